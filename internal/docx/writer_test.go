package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestWrite_PackageParts(t *testing.T) {
	doc := New(UniformMargins(HalfInch)).AddParagraph("Привет")

	data, err := doc.Bytes()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
	}, names)
}

func TestWrite_ParagraphsAndMargins(t *testing.T) {
	doc := New(UniformMargins(HalfInch)).
		AddHeading("СОГЛАСИЕ", StyleHeading2).
		AddBlank().
		AddParagraph("  Я, <Иванов> & Co  ")

	data, err := doc.Bytes()
	require.NoError(t, err)
	body := readPart(t, data, "word/document.xml")

	assert.Contains(t, body, `<w:pStyle w:val="Heading2"/>`)
	assert.Contains(t, body, `<w:t xml:space="preserve">СОГЛАСИЕ</w:t>`)
	assert.Contains(t, body, `<w:p/>`)
	assert.Contains(t, body, `<w:t xml:space="preserve">  Я, &lt;Иванов&gt; &amp; Co  </w:t>`)
	assert.Contains(t, body, `<w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720"`)
	assert.Equal(t, 2, strings.Count(body, "<w:p>"))
	assert.Equal(t, 1, strings.Count(body, "<w:p/>"))
}

func TestWrite_Deterministic(t *testing.T) {
	build := func() []byte {
		doc := New(UniformMargins(HalfInch)).AddParagraph("один").AddBlank().AddParagraph("два")
		data, err := doc.Bytes()
		require.NoError(t, err)
		return data
	}
	assert.Equal(t, build(), build())
}

func TestDocument_PlainText(t *testing.T) {
	doc := New(UniformMargins(HalfInch)).AddParagraph("a").AddBlank().AddHeading("b", StyleHeading2)
	assert.Equal(t, "a\n\nb", doc.PlainText())
	require.Len(t, doc.Paragraphs, 3)
	assert.Equal(t, Paragraph{}, doc.Paragraphs[1])
}

func TestUniformMargins(t *testing.T) {
	assert.Equal(t, Margins{Top: 720, Right: 720, Bottom: 720, Left: 720}, UniformMargins(HalfInch))
}
