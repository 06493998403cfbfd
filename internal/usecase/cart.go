package usecase

import (
	"context"

	"github.com/example/storefront-service/internal/domain"
)

// ListCart — строки корзины пользователя, обогащённые данными каталога.
type ListCart struct {
	Users domain.UserRepository
	Cart  domain.CartRepository
}

func (uc ListCart) Execute(ctx context.Context, email string) ([]domain.CartEntry, error) {
	u, err := uc.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return uc.Cart.Lines(ctx, u.ID)
}

// AddToCart — создать строку корзины или увеличить количество существующей.
type AddToCart struct {
	Users domain.UserRepository
	Cart  domain.CartRepository
}

// Execute возвращает created=true, если строка появилась впервые.
func (uc AddToCart) Execute(ctx context.Context, email string, itemID int64, quantity int) (bool, error) {
	u, err := uc.Users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return uc.Cart.Merge(ctx, u.ID, itemID, quantity)
}

// RemoveFromCart — удалить строку корзины; повторное удаление не считается ошибкой.
type RemoveFromCart struct {
	Users domain.UserRepository
	Cart  domain.CartRepository
}

func (uc RemoveFromCart) Execute(ctx context.Context, email string, itemID int64) error {
	u, err := uc.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return uc.Cart.Remove(ctx, u.ID, itemID)
}
