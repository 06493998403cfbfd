package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/example/storefront-service/internal/domain"
)

func (s *Server) handleGenerateVoucher(w http.ResponseWriter, r *http.Request) {
	var req domain.VoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "generate voucher", domain.ErrValidation)
		return
	}
	path, err := s.uc.GenerateVoucher.Execute(req)
	if err != nil {
		s.writeError(w, "generate voucher", err)
		return
	}
	// артефакт не переживает запрос, даже если передача оборвалась
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		s.writeError(w, "generate voucher", err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
	if _, err := io.Copy(w, f); err != nil {
		s.log.Warn("voucher stream interrupted", zap.Error(err))
	}
}
