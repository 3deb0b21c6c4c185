// Package ingest extracts plain manuscript text from the supported source
// formats. Paragraph boundaries survive extraction as blank lines; the
// paragraph-level analyzers depend on them.
package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

type Parsed struct {
	Title      string
	SourcePath string
	Text       string
}

// ParseFile loads a manuscript from a .txt, .md, .docx or .pdf file. The
// title defaults to the file name without its extension.
func ParseFile(path string) (*Parsed, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var text string
	var err error
	switch ext {
	case ".txt", ".md", ".markdown":
		var raw []byte
		raw, err = os.ReadFile(path)
		text = string(raw)
	case ".docx":
		var raw []byte
		raw, err = os.ReadFile(path)
		if err == nil {
			text, err = parseDOCX(raw)
		}
	case ".pdf":
		text, err = parsePDF(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &Parsed{
		Title:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		SourcePath: path,
		Text:       normalizeText(text),
	}, nil
}

// parseDOCX pulls run text out of word/document.xml; each closed paragraph
// element becomes a blank-line separated paragraph.
func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, openErr := f.Open()
			if openErr != nil {
				return "", fmt.Errorf("open document.xml: %w", openErr)
			}
			defer rc.Close()
			xmlData, err = io.ReadAll(rc)
			if err != nil {
				return "", fmt.Errorf("read document.xml: %w", err)
			}
			break
		}
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("word/document.xml not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return "", fmt.Errorf("decode document.xml: %w", tokenErr)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
			if t.Name.Local == "p" && b.Len() > 0 {
				b.WriteString("\n\n")
			}
		case xml.CharData:
			if inText {
				b.WriteString(string(t))
			}
		}
	}
	return b.String(), nil
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}

// normalizeText collapses spacing inside lines and normalizes line endings,
// keeping blank lines so paragraph structure survives.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Join(strings.Fields(line), " ")
	}
	joined := strings.Join(out, "\n")
	for strings.Contains(joined, "\n\n\n") {
		joined = strings.ReplaceAll(joined, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(joined)
}
