package shopping

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"foodgram/internal/pkg/apperr"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

const (
	fontFamily = "body"

	marginLeft   = 70.0
	marginTop    = 60.0
	marginBottom = 60.0
	colQuantityX = 350.0
	colUnitX     = 430.0
	nameWidth    = colQuantityX - marginLeft - 15
	rowStep      = 25.0
	wrapStep     = 16.0
	titleSize    = 20.0
	headingSize  = 14.0
	bodySize     = 12.0
)

// documentTime is stamped into every PDF so that output depends only on input.
var documentTime = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer lays the list out on A4 pages using a UTF-8 TrueType font.
// Rows that do not fit continue on a new page under a repeated column header.
type PDFRenderer struct {
	Title string
	// FontPath selects a TTF file; empty means the embedded Go Regular font.
	FontPath string
}

func (PDFRenderer) ContentType() string { return "application/pdf" }
func (PDFRenderer) Extension() string   { return "pdf" }

func (r PDFRenderer) Render(items []Item) ([]byte, error) {
	ttf, err := r.loadFont()
	if err != nil {
		return nil, err
	}
	if err := checkGlyphs(ttf, r.texts(items)); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(documentTime)
	pdf.SetModificationDate(documentTime)
	pdf.SetTitle(r.Title, true)
	pdf.SetCreator("foodgram", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(fontFamily, "", ttf)

	_, pageHeight := pdf.GetPageSize()
	bottom := pageHeight - marginBottom

	pdf.AddPage()
	y := marginTop
	pdf.SetFont(fontFamily, "", titleSize)
	pdf.Text(marginLeft, y, r.Title)
	y += 30
	pdf.SetFont(fontFamily, "", headingSize)
	pdf.Text(marginLeft, y, subtitle)
	y += 40
	pdf.Text(marginLeft, y, sectionHeading)
	y += 35
	y = drawHeader(pdf, y)

	pdf.SetFont(fontFamily, "", bodySize)
	for _, it := range items {
		lines := wrap(pdf, it.Name, nameWidth)
		height := rowStep + float64(len(lines)-1)*wrapStep
		if y+height-rowStep > bottom {
			pdf.AddPage()
			y = drawHeader(pdf, marginTop)
			pdf.SetFont(fontFamily, "", bodySize)
		}

		for i, line := range lines {
			pdf.Text(marginLeft, y+float64(i)*wrapStep, line)
		}
		pdf.Text(colQuantityX, y, strconv.FormatInt(it.Amount, 10))
		pdf.Text(colUnitX, y, it.Unit)
		y += height
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperr.Wrap(ErrResourceUnavailable, err)
	}
	return buf.Bytes(), nil
}

// drawHeader writes the column titles at y and returns the baseline of the
// first row below them.
func drawHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont(fontFamily, "", headingSize)
	pdf.Text(marginLeft, y, colName)
	pdf.Text(colQuantityX, y, colQuantity)
	pdf.Text(colUnitX, y, colUnit)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, y+6, colUnitX+100, y+6)
	return y + rowStep
}

// wrap splits s on spaces into lines no wider than width. A single word
// wider than width gets a line of its own.
func wrap(pdf *fpdf.Fpdf, s string, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if pdf.GetStringWidth(cur+" "+w) <= width {
			cur += " " + w
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}

func (r PDFRenderer) loadFont() ([]byte, error) {
	if r.FontPath == "" {
		return goregular.TTF, nil
	}
	b, err := os.ReadFile(r.FontPath)
	if err != nil {
		return nil, apperr.Wrap(apperr.WithMessage(ErrResourceUnavailable, "Document font cannot be read"), err)
	}
	return b, nil
}

func (r PDFRenderer) texts(items []Item) []string {
	out := []string{r.Title, subtitle, sectionHeading, colName, colQuantity, colUnit, "0123456789"}
	for _, it := range items {
		out = append(out, it.Name, it.Unit)
	}
	return out
}

// checkGlyphs fails when the font cannot be parsed or lacks a glyph for any
// rune of texts.
func checkGlyphs(ttf []byte, texts []string) error {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return apperr.Wrap(apperr.WithMessage(ErrResourceUnavailable, "Document font is not a valid TrueType font"), err)
	}

	var buf sfnt.Buffer
	checked := make(map[rune]bool)
	for _, s := range texts {
		for _, ch := range s {
			if checked[ch] {
				continue
			}
			idx, err := f.GlyphIndex(&buf, ch)
			if err != nil {
				return apperr.Wrap(ErrResourceUnavailable, err)
			}
			if idx == 0 {
				return apperr.WithMessage(ErrResourceUnavailable,
					fmt.Sprintf("Document font has no glyph for %q (U+%04X)", ch, ch))
			}
			checked[ch] = true
		}
	}
	return nil
}
