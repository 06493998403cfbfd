package usecase

import (
	"context"

	"github.com/example/storefront-service/internal/domain"
)

// SaveContactMessage — сохранить сообщение обратной связи.
type SaveContactMessage struct {
	Contacts domain.ContactRepository
}

func (uc SaveContactMessage) Execute(ctx context.Context, name, email, message string) error {
	return uc.Contacts.Save(ctx, name, email, message)
}
