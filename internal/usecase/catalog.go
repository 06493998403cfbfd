package usecase

import (
	"context"
	"encoding/json"

	"github.com/example/storefront-service/internal/domain"
)

// ListCatalog — выдать каталог из кэша с необязательным фильтром по категории.
type ListCatalog struct {
	Cache domain.ItemCache
}

func (uc ListCatalog) Execute(category string) []domain.Item {
	return uc.Cache.List(category)
}

// AddCatalogItem — сохранить новую позицию каталога и обновить кэш.
type AddCatalogItem struct {
	Repo  domain.ItemRepository
	Cache domain.ItemCache
}

func (uc AddCatalogItem) Execute(ctx context.Context, it domain.Item) (int64, error) {
	if it.Title == "" {
		return 0, domain.ErrValidation
	}
	id, err := uc.Repo.Insert(ctx, it)
	if err != nil {
		return 0, err
	}
	it.ID = id
	uc.Cache.Set(it)
	return id, nil
}

// LoadCatalog — загрузить весь каталог из репозитория в кэш при старте.
type LoadCatalog struct {
	Repo  domain.ItemRepository
	Cache domain.ItemCache
}

func (uc LoadCatalog) Execute(ctx context.Context) error {
	return uc.Repo.LoadAll(ctx, func(it domain.Item) error {
		uc.Cache.Set(it)
		return nil
	})
}

// SyncCatalogItem — применить входящее сообщение каталога и обновить кэш.
type SyncCatalogItem struct {
	Repo  domain.ItemRepository
	Cache domain.ItemCache
}

func (uc SyncCatalogItem) Execute(ctx context.Context, raw []byte) error {
	var it domain.Item
	if err := json.Unmarshal(raw, &it); err != nil {
		return err
	}
	if it.ID == 0 || it.Title == "" {
		return domain.ErrValidation
	}
	if err := uc.Repo.Upsert(ctx, it); err != nil {
		return err
	}
	uc.Cache.Set(it)
	return nil
}
