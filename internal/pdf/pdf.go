// Package pdf renders a freeform text blob into a paginated PDF
// document: fixed page size, word-wrapped lines, top-to-bottom cursor
// with a page break near the bottom edge.
package pdf

import (
	"bytes"
	"math"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Layout constants, in PDF points.
const (
	pageWidth  = 595.0
	pageHeight = 842.0
	margin     = 72.0
	wrapWidth  = 500.0
	fontSize   = 12.0
	lineHeight = fontSize + 5
	// A new page is allocated once the cursor drops below 40 units from
	// the bottom edge.
	bottomLimit = pageHeight - 40
)

// Document is a rendered PDF.
type Document struct {
	Bytes []byte
	Pages int
	Lines int // wrapped line count, blank lines included
}

// Renderer lays out text documents. Stateless; a single instance serves
// all requests.
type Renderer struct {
	fontFamily string
}

// NewRenderer creates a renderer using the built-in Helvetica font.
func NewRenderer() *Renderer {
	return &Renderer{fontFamily: "Helvetica"}
}

// Render wraps content at the fixed width and emits it across as many
// pages as needed.
func (r *Renderer) Render(content string) (*Document, error) {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetFont(r.fontFamily, "", fontSize)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	lines := wrapLines(doc, content)

	y := margin
	for _, line := range lines {
		if y > bottomLimit {
			doc.AddPage()
			y = margin
		}
		doc.Text(margin, y, line)
		y += lineHeight
	}

	if err := doc.Error(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	return &Document{
		Bytes: buf.Bytes(),
		Pages: doc.PageCount(),
		Lines: len(lines),
	}, nil
}

// wrapLines splits content into paragraphs on newlines and word-wraps
// each paragraph at the layout width. Blank paragraphs survive as empty
// lines so vertical spacing is preserved.
func wrapLines(doc *gofpdf.Fpdf, content string) []string {
	var lines []string
	for _, para := range strings.Split(content, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, doc.SplitText(para, wrapWidth)...)
	}
	return lines
}

// LinesPerPage returns how many line slots fit on one page.
func LinesPerPage() int {
	return int(math.Floor((bottomLimit-margin)/lineHeight)) + 1
}

// PagesFor returns the page count needed for n wrapped lines.
func PagesFor(n int) int {
	if n <= 0 {
		return 1
	}
	per := LinesPerPage()
	return (n + per - 1) / per
}
