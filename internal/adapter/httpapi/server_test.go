package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/example/storefront-service/internal/adapter/barcode"
	"github.com/example/storefront-service/internal/adapter/cache"
	"github.com/example/storefront-service/internal/adapter/document"
	"github.com/example/storefront-service/internal/domain"
	"github.com/example/storefront-service/internal/usecase"
)

type stubUsers struct {
	users map[string]domain.User
}

func (s *stubUsers) Create(_ context.Context, u domain.User) error {
	s.users[u.Email] = u
	return nil
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (s *stubUsers) FindByNameAndEmail(_ context.Context, name, email string) (domain.User, error) {
	u, ok := s.users[email]
	if !ok || u.Name != name {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

type stubCart struct {
	lines  map[[2]int64]int
	titles map[int64]string
}

func (s *stubCart) Lines(_ context.Context, userID int64) ([]domain.CartEntry, error) {
	var entries []domain.CartEntry
	for key, qty := range s.lines {
		if key[0] == userID {
			entries = append(entries, domain.CartEntry{Title: s.titles[key[1]], Quantity: qty})
		}
	}
	return entries, nil
}

func (s *stubCart) Merge(_ context.Context, userID, itemID int64, delta int) (bool, error) {
	if _, ok := s.titles[itemID]; !ok {
		return false, domain.ErrNotFound
	}
	key := [2]int64{userID, itemID}
	_, exists := s.lines[key]
	s.lines[key] += delta
	return !exists, nil
}

func (s *stubCart) Remove(_ context.Context, userID, itemID int64) error {
	delete(s.lines, [2]int64{userID, itemID})
	return nil
}

func newTestServer(t *testing.T, voucherDir string) *Server {
	t.Helper()
	users := &stubUsers{users: map[string]domain.User{
		"a@x.com": {ID: 7, Name: "Ana", Email: "a@x.com", Role: "customer"},
	}}
	cartLines := &stubCart{
		lines:  make(map[[2]int64]int),
		titles: map[int64]string{3: "Widget"},
	}
	itemCache := cache.NewMemoryItemCache()
	itemCache.Set(domain.Item{ID: 3, Title: "Widget", Category: "tools"})

	return NewServer(zap.NewNop(), Usecases{
		ListCatalog:    usecase.ListCatalog{Cache: itemCache},
		GetUser:        usecase.GetUser{Users: users},
		Login:          usecase.Login{Users: users},
		ListCart:       usecase.ListCart{Users: users, Cart: cartLines},
		AddToCart:      usecase.AddToCart{Users: users, Cart: cartLines},
		RemoveFromCart: usecase.RemoveFromCart{Users: users, Cart: cartLines},
		GenerateVoucher: usecase.GenerateVoucher{
			Encoder:  barcode.Code128Encoder{},
			Renderer: document.PDFRenderer{},
			TempDir:  voucherDir,
		},
	}, t.TempDir())
}

func TestCartEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{
			name:     "list cart for existing user",
			method:   http.MethodGet,
			path:     "/api/cart/a@x.com",
			wantCode: http.StatusOK,
		},
		{
			name:     "list cart for unknown user",
			method:   http.MethodGet,
			path:     "/api/cart/ghost@x.com",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "first add creates the line",
			method:   http.MethodPost,
			path:     "/api/cart/a@x.com",
			body:     `{"itemId":3,"quantity":2}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "add for unknown user",
			method:   http.MethodPost,
			path:     "/api/cart/ghost@x.com",
			body:     `{"itemId":3,"quantity":2}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "add for unknown item",
			method:   http.MethodPost,
			path:     "/api/cart/a@x.com",
			body:     `{"itemId":99,"quantity":2}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "remove is idempotent",
			method:   http.MethodDelete,
			path:     "/api/cart/a@x.com/3",
			wantCode: http.StatusOK,
		},
		{
			name:     "remove with bad item id",
			method:   http.MethodDelete,
			path:     "/api/cart/a@x.com/xyz",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, t.TempDir())
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.Router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("%s %s = %d, want %d (body %s)", tt.method, tt.path, w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestAddThenMergeStatusCodes(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/a@x.com", strings.NewReader(`{"itemId":3,"quantity":2}`))
		w := httptest.NewRecorder()
		srv.Router.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusCreated {
		t.Fatalf("first add = %d, want 201", code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("second add = %d, want 200", code)
	}
}

func TestListItems(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/api/items?category=tools", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("list items = %d, want 200", w.Code)
	}
	var items []domain.Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Widget" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestGenerateVoucherDownload(t *testing.T) {
	voucherDir := t.TempDir()
	srv := newTestServer(t, voucherDir)

	req := httptest.NewRequest(http.MethodPost, "/api/voucher", strings.NewReader(`{"payeeId":"a@x.com","amount":150}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("voucher = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response body is not a PDF")
	}

	// временный артефакт не переживает запрос
	entries, err := os.ReadDir(voucherDir)
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("temp dir holds %d leftover files", len(entries))
	}
}

func TestGenerateVoucherMissingField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing amount", `{"payeeId":"a@x.com"}`},
		{"missing payee", `{"amount":150}`},
		{"empty body", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			voucherDir := t.TempDir()
			srv := newTestServer(t, voucherDir)

			req := httptest.NewRequest(http.MethodPost, "/api/voucher", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.Router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("voucher = %d, want 400", w.Code)
			}
			var body errorBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad error body: %v", err)
			}
			if body.Error != "validation" {
				t.Errorf("error kind = %q, want validation", body.Error)
			}
			entries, err := os.ReadDir(voucherDir)
			if err != nil {
				t.Fatalf("read temp dir: %v", err)
			}
			if len(entries) != 0 {
				t.Error("no artifact may be created on rejected input")
			}
		})
	}
}

func TestGetUserAndLogin(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/api/users/a@x.com", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get user = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"name":"Ana","email":"a@x.com"}`))
	w = httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d, want 200", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad login body: %v", err)
	}
	if resp["role"] != "customer" {
		t.Errorf("role = %q, want customer", resp["role"])
	}

	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"name":"Eve","email":"a@x.com"}`))
	w = httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("login with wrong name = %d, want 404", w.Code)
	}
}
