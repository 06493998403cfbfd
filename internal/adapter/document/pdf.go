package document

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/storefront-service/internal/domain"
)

// Макет в пунктах: заголовок 20pt, штрихкод вписывается в 300x150 с сохранением пропорций.
const (
	titleSize = 20
	refSize   = 10
	maxBarW   = 300
	maxBarH   = 150
)

// PDFRenderer — сборщик одностраничного платёжного документа.
type PDFRenderer struct{}

func (PDFRenderer) Render(w io.Writer, amount, reference string, barcodePNG []byte) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", titleSize)
	pdf.CellFormat(0, titleSize*1.5, fmt.Sprintf("Paga %s MXN en OXXO", amount), "", 1, "C", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	info := pdf.RegisterImageOptionsReader("barcode", opts, bytes.NewReader(barcodePNG))
	if pdf.Err() {
		return fmt.Errorf("register barcode image: %w", pdf.Error())
	}
	if info.Width() <= 0 || info.Height() <= 0 {
		return fmt.Errorf("barcode image has no dimensions")
	}
	scale := math.Min(maxBarW/info.Width(), maxBarH/info.Height())
	imgW, imgH := info.Width()*scale, info.Height()*scale
	pageW, _ := pdf.GetPageSize()
	y := pdf.GetY() + 20
	pdf.ImageOptions("barcode", (pageW-imgW)/2, y, imgW, imgH, false, opts, 0, "")

	// человекочитаемая строка под штрихами
	pdf.SetY(y + imgH + 6)
	pdf.SetFont("Helvetica", "", refSize)
	pdf.CellFormat(0, refSize*1.5, reference, "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

var _ domain.VoucherRenderer = PDFRenderer{}
