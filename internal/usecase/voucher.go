package usecase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/example/storefront-service/internal/domain"
)

// GenerateVoucher — конвейер ваучера: ссылка → штрихкод → документ → временный файл.
type GenerateVoucher struct {
	Encoder  domain.BarcodeEncoder
	Renderer domain.VoucherRenderer
	TempDir  string // пусто — os.TempDir()
}

// Execute возвращает путь к готовому документу; файл удаляет вызывающая сторона
// после передачи ответа. При любой ошибке временных артефактов не остаётся.
func (uc GenerateVoucher) Execute(req domain.VoucherRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	ref := req.Reference()
	png, err := uc.Encoder.Encode(ref)
	if err != nil {
		return "", err
	}

	dir := uc.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("barcode-%s.pdf", uuid.NewString()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := uc.Renderer.Render(f, req.Amount.String(), ref, png); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
