// Package docx models a minimal word-processing document and serializes it as Office Open XML (.docx).
package docx

import "strings"

// Extension is the file extension of serialized documents
const Extension = ".docx"

// HalfInch is half an inch in twentieths of a point (twips)
const HalfInch = 720

// Style names a paragraph style defined in the document's style sheet
type Style string

const (
	// StyleNormal is the default body style
	StyleNormal Style = ""
	// StyleHeading2 is a second-level heading
	StyleHeading2 Style = "Heading2"
)

// Paragraph is a single block of text. An empty Text is a blank separator paragraph.
type Paragraph struct {
	Text  string
	Style Style
}

// Margins are page margins in twips
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformMargins returns margins of the same size on every side
func UniformMargins(twips int) Margins {
	return Margins{Top: twips, Right: twips, Bottom: twips, Left: twips}
}

// Document is a single-section document: page margins plus an ordered list of paragraphs
type Document struct {
	Margins    Margins
	Paragraphs []Paragraph
}

// New creates an empty document with the given margins
func New(margins Margins) *Document {
	return &Document{Margins: margins}
}

// AddParagraph appends a body paragraph
func (d *Document) AddParagraph(text string) *Document {
	return d.add(Paragraph{Text: text})
}

// AddHeading appends a paragraph in the given heading style
func (d *Document) AddHeading(text string, style Style) *Document {
	return d.add(Paragraph{Text: text, Style: style})
}

// AddBlank appends an empty separator paragraph
func (d *Document) AddBlank() *Document {
	return d.add(Paragraph{})
}

func (d *Document) add(p Paragraph) *Document {
	d.Paragraphs = append(d.Paragraphs, p)
	return d
}

// PlainText joins paragraph texts with newlines, one line per paragraph
func (d *Document) PlainText() string {
	lines := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		lines[i] = p.Text
	}
	return strings.Join(lines, "\n")
}
