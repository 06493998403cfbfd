package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/example/storefront-service/internal/adapter/cache"
	"github.com/example/storefront-service/internal/adapter/httpapi"
	"github.com/example/storefront-service/internal/domain"
	"github.com/example/storefront-service/internal/usecase"
)

func BenchmarkHandleListItems(b *testing.B) {
	// Build HTTP adapter with in-memory cache and seeded data
	itemCache := cache.NewMemoryItemCache()
	for i := 0; i < 1000; i++ {
		itemCache.Set(domain.Item{ID: int64(i + 1), Title: fmt.Sprintf("item-%d", i), Category: fmt.Sprintf("cat-%d", i%10)})
	}
	srv := httpapi.NewServer(zap.NewNop(), httpapi.Usecases{
		ListCatalog: usecase.ListCatalog{Cache: itemCache},
	}, b.TempDir())
	router := srv.Router

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/items?category=cat-%d", i%10), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			i++
		}
	})
}

func BenchmarkCacheGet(b *testing.B) {
	c := cache.NewMemoryItemCache()
	for i := 0; i < 10000; i++ {
		c.Set(domain.Item{ID: int64(i)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(int64(i % 10000))
	}
}
