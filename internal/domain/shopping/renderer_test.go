package shopping

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"foodgram/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []Item{
	{IngredientID: 1, Name: "flour", Amount: 300, Unit: "g"},
	{IngredientID: 2, Name: "sugar", Amount: 50, Unit: "g"},
}

func TestTextRenderer(t *testing.T) {
	out, err := TextRenderer{Title: "Shopping helper"}.Render(sample)
	require.NoError(t, err)

	want := "Shopping helper\n" +
		"shopping list:\n" +
		"\n" +
		"Ingredients:\n" +
		"Name   Quantity  Unit\n" +
		"flour  300       g\n" +
		"sugar  50        g\n"
	assert.Equal(t, want, string(out))
}

func TestTextRenderer_Empty(t *testing.T) {
	out, err := TextRenderer{Title: "T"}.Render([]Item{})
	require.NoError(t, err)
	assert.Equal(t, "T\nshopping list:\n\nIngredients:\nName  Quantity  Unit\n", string(out))
}

func TestPDFRenderer_Deterministic(t *testing.T) {
	r := PDFRenderer{Title: "Shopping helper"}

	first, err := r.Render(sample)
	require.NoError(t, err)
	second, err := r.Render(sample)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
	assert.Equal(t, first, second)
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Extension())
}

func TestPDFRenderer_NonLatin(t *testing.T) {
	items := []Item{{IngredientID: 1, Name: "мука пшеничная", Amount: 500, Unit: "г"}}
	out, err := PDFRenderer{Title: "Продуктовый помощник"}.Render(items)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPDFRenderer_MissingGlyph(t *testing.T) {
	items := []Item{{IngredientID: 1, Name: "味噌", Amount: 1, Unit: "kg"}}
	_, err := PDFRenderer{Title: "T"}.Render(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.Equal(t, apperr.KindResource, apperr.KindOf(err))
}

func TestPDFRenderer_BadFont(t *testing.T) {
	_, err := PDFRenderer{Title: "T", FontPath: filepath.Join(t.TempDir(), "missing.ttf")}.Render(sample)
	assert.ErrorIs(t, err, ErrResourceUnavailable)

	notFont := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(notFont, []byte("definitely not a font"), 0o600))
	_, err = PDFRenderer{Title: "T", FontPath: notFont}.Render(sample)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestPDFRenderer_Paginates(t *testing.T) {
	items := make([]Item, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, Item{IngredientID: int64(i + 1), Name: fmt.Sprintf("ingredient %03d", i), Amount: int64(i), Unit: "g"})
	}
	out, err := PDFRenderer{Title: "T"}.Render(items)
	require.NoError(t, err)

	pages := bytes.Count(out, []byte("/Type /Page")) - bytes.Count(out, []byte("/Type /Pages"))
	assert.GreaterOrEqual(t, pages, 4)
}

func TestPDFRenderer_WrapsLongNames(t *testing.T) {
	long := Item{IngredientID: 1, Name: "extra virgin cold pressed olive oil from the southern slopes of the hills", Amount: 1, Unit: "l"}
	out, err := PDFRenderer{Title: "T"}.Render([]Item{long})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
