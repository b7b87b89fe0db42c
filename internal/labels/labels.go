// Package labels renders printable QR label sheets for rack cells, so
// every physical cell on the board carries a scannable coordinate.
package labels

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// QR payload format for one cell, e.g. "FGSB/A-2-3".
func cellCode(rack string, row, col int) string {
	return fmt.Sprintf("FGSB/%s-%d-%d", rack, row, col)
}

// GenerateRackLabelsPDF creates an A4 PDF with one QR label per cell of
// the given rack, laid out in the rack's own grid shape so the printed
// sheet reads like the rack itself.
func GenerateRackLabelsPDF(rack string, rows, cols int) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Arial", "B", 10)

	const (
		pageWidth  = 210.0
		pageHeight = 297.0
		margin     = 10.0
		gap        = 2.0
	)

	// Up to 6 label columns per page; wide racks continue on extra pages.
	perPageCols := cols
	if perPageCols > 6 {
		perPageCols = 6
	}
	labelW := (pageWidth - 2*margin - float64(perPageCols-1)*gap) / float64(perPageCols)
	labelH := (pageHeight - 2*margin - float64(rows-1)*gap) / 8 // keep labels hand-sized
	if labelH > labelW {
		labelH = labelW
	}

	pages := (cols + perPageCols - 1) / perPageCols
	for page := 0; page < pages; page++ {
		pdf.AddPage()
		firstCol := page*perPageCols + 1
		lastCol := firstCol + perPageCols - 1
		if lastCol > cols {
			lastCol = cols
		}

		for row := 1; row <= rows; row++ {
			for col := firstCol; col <= lastCol; col++ {
				x := margin + float64(col-firstCol)*(labelW+gap)
				y := margin + float64(row-1)*(labelH+gap)

				code := cellCode(rack, row, col)
				qrPng, err := qrcode.Encode(code, qrcode.Low, 256)
				if err != nil {
					return nil, err
				}

				imgName := fmt.Sprintf("qr_%s_%d_%d", rack, row, col)
				opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
				_ = pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(qrPng))

				qrSize := labelH * 0.7
				pdf.ImageOptions(imgName, x+(labelW-qrSize)/2, y+1, qrSize, qrSize, false, opts, 0, "")

				pdf.SetXY(x, y+labelH-5)
				pdf.SetFontSize(8)
				pdf.CellFormat(labelW, 4, fmt.Sprintf("%s %d-%d", rack, row, col), "", 0, "C", false, 0, "")
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
