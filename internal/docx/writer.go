package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

// partTime is stamped on every package part so identical documents serialize to identical bytes
var partTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// A4 portrait in twips
const (
	pageWidth  = 11906
	pageHeight = 16838
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

const stylesXML = xmlHeader + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman"/>` +
	`<w:sz w:val="24"/><w:lang w:val="ru-RU"/>` +
	`</w:rPr></w:rPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/>` +
	`<w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:outlineLvl w:val="1"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>` +
	`</w:styles>`

// Bytes serializes the document into a .docx package
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the document into a .docx package written to w
func Write(w io.Writer, d *Document) error {
	body, err := documentXML(d)
	if err != nil {
		return &WriteError{Part: "word/document.xml", Cause: err}
	}

	zw := zip.NewWriter(w)
	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/document.xml", body},
		{"word/styles.xml", []byte(stylesXML)},
	}
	for _, part := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: partTime,
		})
		if err != nil {
			return &WriteError{Part: part.name, Cause: err}
		}
		if _, err := fw.Write(part.content); err != nil {
			return &WriteError{Part: part.name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &WriteError{Part: "package", Cause: err}
	}
	return nil
}

func documentXML(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, p := range d.Paragraphs {
		if err := writeParagraph(&buf, p); err != nil {
			return nil, err
		}
	}

	m := d.Margins
	fmt.Fprintf(&buf, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`, pageWidth, pageHeight)
	fmt.Fprintf(&buf, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="708" w:footer="708" w:gutter="0"/>`,
		m.Top, m.Right, m.Bottom, m.Left)
	buf.WriteString(`</w:sectPr></w:body></w:document>`)
	return buf.Bytes(), nil
}

func writeParagraph(buf *bytes.Buffer, p Paragraph) error {
	if p.Text == "" && p.Style == StyleNormal {
		buf.WriteString(`<w:p/>`)
		return nil
	}

	buf.WriteString(`<w:p>`)
	if p.Style != StyleNormal {
		buf.WriteString(`<w:pPr><w:pStyle w:val="`)
		if err := xml.EscapeText(buf, []byte(p.Style)); err != nil {
			return err
		}
		buf.WriteString(`"/></w:pPr>`)
	}
	if p.Text != "" {
		buf.WriteString(`<w:r><w:t xml:space="preserve">`)
		if err := xml.EscapeText(buf, []byte(p.Text)); err != nil {
			return err
		}
		buf.WriteString(`</w:t></w:r>`)
	}
	buf.WriteString(`</w:p>`)
	return nil
}
