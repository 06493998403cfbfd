package domain

import (
	"context"
	"io"
)

// UserRepository — порт персистентности пользователей.
type UserRepository interface {
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	FindByNameAndEmail(ctx context.Context, name, email string) (User, error)
}

// ItemRepository — порт персистентности каталога.
type ItemRepository interface {
	Insert(ctx context.Context, it Item) (int64, error)
	Upsert(ctx context.Context, it Item) error
	LoadAll(ctx context.Context, fn func(it Item) error) error
}

// CartRepository — порт операций над строками корзины.
type CartRepository interface {
	Lines(ctx context.Context, userID int64) ([]CartEntry, error)
	// Merge атомарно создаёт строку или увеличивает количество; created=true при первой вставке.
	Merge(ctx context.Context, userID, itemID int64, delta int) (created bool, err error)
	Remove(ctx context.Context, userID, itemID int64) error
}

// ContactRepository — порт хранения сообщений обратной связи.
type ContactRepository interface {
	Save(ctx context.Context, name, email, message string) error
}

// ItemCache — порт быстрого доступа к каталогу (кэш).
type ItemCache interface {
	Get(id int64) (Item, bool)
	Set(it Item)
	List(category string) []Item
}

// MessageSubscriber — порт подписчика на входящие сообщения каталога.
type MessageSubscriber interface {
	// Subscribe регистрирует обработчик; ack/повторные доставки реализует адаптер.
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}

// BarcodeEncoder — порт генерации изображения штрихкода из текстовой ссылки.
type BarcodeEncoder interface {
	Encode(text string) ([]byte, error)
}

// VoucherRenderer — порт сборки одностраничного печатного документа ваучера.
type VoucherRenderer interface {
	Render(w io.Writer, amount string, reference string, barcodePNG []byte) error
}

// Общие доменные ошибки
var (
	ErrNotFound   = notFoundError("not found")
	ErrValidation = validationError("invalid data")
	ErrEncoding   = encodingError("encoding failed")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }

type encodingError string

func (e encodingError) Error() string { return string(e) }
