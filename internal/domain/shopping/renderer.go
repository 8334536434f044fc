package shopping

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// Renderer turns an aggregated shopping list into a downloadable document.
// Equal input must give byte-identical output.
type Renderer interface {
	Render(items []Item) ([]byte, error)
	ContentType() string
	Extension() string
}

const (
	subtitle       = "shopping list:"
	sectionHeading = "Ingredients:"
	colName        = "Name"
	colQuantity    = "Quantity"
	colUnit        = "Unit"
)

type TextRenderer struct {
	Title string
}

func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }
func (TextRenderer) Extension() string   { return "txt" }

func (r TextRenderer) Render(items []Item) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%s\n\n%s\n", r.Title, subtitle, sectionHeading)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n", colName, colQuantity, colUnit)
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", it.Name, it.Amount, it.Unit)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
