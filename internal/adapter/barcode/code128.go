package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"

	"github.com/example/storefront-service/internal/domain"
)

// Фиксированная геометрия: ширина модуля x3, высота штрихов в пикселях.
const (
	moduleScale = 3
	barHeight   = 90
)

// Code128Encoder — генератор линейного штрихкода Code 128 в PNG-буфер.
type Code128Encoder struct{}

func (Code128Encoder) Encode(text string) ([]byte, error) {
	code, err := code128.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	scaled, err := bc.Scale(code, code.Bounds().Dx()*moduleScale, barHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

var _ domain.BarcodeEncoder = Code128Encoder{}
