package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/storefront-service/internal/domain"
)

const maxUploadBytes = 10 << 20

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items := s.uc.ListCatalog.Execute(r.URL.Query().Get("category"))
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, "add item", domain.ErrValidation)
		return
	}
	price := decimal.Zero
	if v := r.FormValue("price"); v != "" {
		var err error
		if price, err = decimal.NewFromString(v); err != nil {
			s.writeError(w, "add item", domain.ErrValidation)
			return
		}
	}
	it := domain.Item{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Price:       price,
	}

	// изображение не обязательно
	file, hdr, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(hdr.Filename))
		if err := saveUpload(filepath.Join(s.uploadsDir, name), file); err != nil {
			s.writeError(w, "add item", err)
			return
		}
		it.Image = "/uploads/" + name
	case !errors.Is(err, http.ErrMissingFile):
		s.writeError(w, "add item", domain.ErrValidation)
		return
	}

	id, err := s.uc.AddItem.Execute(r.Context(), it)
	if err != nil {
		s.writeError(w, "add item", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func saveUpload(dst string, src io.Reader) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}
