package utils

import (
	"bytes"
	"fmt"
	"testing"

	"foodgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShoppingListPDF(t *testing.T) {
	data, err := GenerateShoppingListPDF([]models.ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", Amount: 700},
		{Name: "egg", MeasurementUnit: "pcs", Amount: 2},
	}, PDFOptions{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderShoppingListContent(t *testing.T) {
	pdf, err := renderShoppingList([]models.ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", Amount: 700},
	}, PDFOptions{}, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.Contains(t, buf.String(), shoppingListTitle)
	assert.Contains(t, buf.String(), "flour: 700 g")
	assert.Equal(t, 1, pdf.PageCount())
}

func TestRenderShoppingListPlaceholder(t *testing.T) {
	pdf, err := renderShoppingList(nil, PDFOptions{}, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.Contains(t, buf.String(), shoppingListPlaceholder)
}

func TestRenderShoppingListPageBreaks(t *testing.T) {
	items := make([]models.ShoppingListItem, 120)
	for i := range items {
		items[i] = models.ShoppingListItem{Name: fmt.Sprintf("item %03d", i), MeasurementUnit: "g", Amount: int64(i + 1)}
	}
	pdf, err := renderShoppingList(items, PDFOptions{}, true)
	require.NoError(t, err)
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestRenderShoppingListMissingFont(t *testing.T) {
	_, err := GenerateShoppingListPDF(nil, PDFOptions{FontPath: "/nonexistent/font.ttf"})
	assert.Error(t, err)
}
