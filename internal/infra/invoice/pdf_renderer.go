// Package invoice renders order invoices as PDF.
package invoice

import (
	"bytes"
	"fmt"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	qrSize     = 35.0
)

type pdfRenderer struct {
	qr service.QRCodeService
}

// NewPDFRenderer creates an InvoiceRenderer that prints a QR code of the order id.
func NewPDFRenderer(qr service.QRCodeService) service.InvoiceRenderer {
	return &pdfRenderer{qr: qr}
}

// Render writes the invoice for order to w.
func (r *pdfRenderer) Render(w io.Writer, order *entity.Order) error {
	if order == nil {
		return errors.New("invoice: order is nil")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+order.ID.String(), true)
	pdf.SetCreator("storefront", true)
	pdf.SetCreationDate(order.CreatedAt)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontFamily, "U", 26)
	pdf.Cell(0, 12, "Invoice")
	pdf.Ln(16)

	pdf.SetFont(fontFamily, "", 11)
	pdf.Cell(0, 6, "Order: "+order.ID.String())
	pdf.Ln(6)
	pdf.Cell(0, 6, "Customer: "+tr(order.Owner.Email))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+order.CreatedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(8)
	pdf.Cell(0, 6, "-----------------------------------------")
	pdf.Ln(8)

	pdf.SetFont(fontFamily, "", 14)
	for _, line := range order.Lines {
		text := fmt.Sprintf("%s - %d x $%s", line.Title, line.Quantity, line.Price.StringFixed(2))
		pdf.CellFormat(140, 8, tr(text), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, "$"+line.Subtotal().StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont(fontFamily, "B", 18)
	pdf.Cell(0, 10, "Total Price: $"+order.Total().StringFixed(2))
	pdf.Ln(14)

	if err := r.drawQRCode(pdf, order); err != nil {
		return err
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "invoice: write pdf")
	}

	return nil
}

func (r *pdfRenderer) drawQRCode(pdf *fpdf.Fpdf, order *entity.Order) error {
	if r.qr == nil {
		return nil
	}

	png, err := r.qr.GenerateOrderQR(order.ID)
	if err != nil {
		return errors.Wrap(err, "invoice: generate qr code")
	}

	name := "qr-" + order.ID.String()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	if pdf.Err() {
		return errors.Wrap(pdf.Error(), "invoice: register qr image")
	}
	pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), qrSize, qrSize, false, opts, 0, "")

	return nil
}
