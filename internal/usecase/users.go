package usecase

import (
	"context"

	"github.com/example/storefront-service/internal/domain"
)

// RegisterUser — зарегистрировать пользователя.
type RegisterUser struct {
	Users domain.UserRepository
}

func (uc RegisterUser) Execute(ctx context.Context, u domain.User) error {
	return uc.Users.Create(ctx, u)
}

// GetUser — найти пользователя по email.
type GetUser struct {
	Users domain.UserRepository
}

func (uc GetUser) Execute(ctx context.Context, email string) (domain.User, error) {
	return uc.Users.GetByEmail(ctx, email)
}

// Login — проверить пару (имя, email) и вернуть роль.
type Login struct {
	Users domain.UserRepository
}

func (uc Login) Execute(ctx context.Context, name, email string) (string, error) {
	u, err := uc.Users.FindByNameAndEmail(ctx, name, email)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}
