package utils

import (
	"bytes"
	"fmt"

	"foodgram/internal/models"

	"github.com/go-pdf/fpdf"
)

const (
	shoppingListTitle       = "Shopping list"
	shoppingListPlaceholder = "No ingredients to buy"
	pdfFontFamily           = "ShoppingListFont"
)

type PDFOptions struct {
	// FontPath points at a UTF-8 TrueType font. Without it the built-in
	// Helvetica is used, which only covers Latin-1.
	FontPath string
}

// GenerateShoppingListPDF renders items as an A4 document: a title, then one
// "• name: amount unit" line per item, breaking onto new pages as needed.
func GenerateShoppingListPDF(items []models.ShoppingListItem, opts PDFOptions) ([]byte, error) {
	pdf, err := renderShoppingList(items, opts, true)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write shopping list PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func renderShoppingList(items []models.ShoppingListItem, opts PDFOptions, compress bool) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle(shoppingListTitle, true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	family := "Helvetica"
	text := pdf.UnicodeTranslatorFromDescriptor("")
	if opts.FontPath != "" {
		pdf.AddUTF8Font(pdfFontFamily, "", opts.FontPath)
		family = pdfFontFamily
		text = func(s string) string { return s }
	}

	pdf.AddPage()
	pdf.SetFont(family, "", 18)
	pdf.CellFormat(0, 12, text(shoppingListTitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(family, "", 12)
	if len(items) == 0 {
		pdf.CellFormat(0, 8, text(shoppingListPlaceholder), "", 1, "C", false, 0, "")
	}
	for _, item := range items {
		line := fmt.Sprintf("• %s: %d %s", item.Name, item.Amount, item.MeasurementUnit)
		pdf.CellFormat(0, 7, text(line), "", 1, "L", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render shopping list PDF: %w", err)
	}
	return pdf, nil
}
