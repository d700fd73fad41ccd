package extraction

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-screening-backend/internal/domain"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText converts a resume file into plain text based on its extension.
// PDF pages are joined by single spaces; DOCX paragraphs come first in
// document order, then table cell text, each chunk newline-terminated.
// Unknown or missing extensions fall back to a plain-text read with invalid
// UTF-8 bytes substituted. On any failure the result is an empty string plus
// a *domain.IngestionError; this function never panics.
func ExtractText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &domain.IngestionError{
				Path:   path,
				Reason: "document parser fault",
				Err:    fmt.Errorf("panic: %v", r),
			}
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDFText(path)
	case ".docx", ".doc":
		return extractDocxText(path)
	default:
		return extractPlainText(path)
	}
}

func extractPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.IngestionError{Path: path, Reason: "unreadable file", Err: err}
	}
	// Tolerate broken encodings by substitution rather than failure.
	return strings.ToValidUTF8(string(data), "�"), nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &domain.IngestionError{Path: path, Reason: "failed to read pdf", Err: err}
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, " "), nil
}

func extractDocxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &domain.IngestionError{Path: path, Reason: "failed to parse docx", Err: err}
	}
	defer doc.Close()

	paragraphs, cells, err := splitDocxContent(doc.Editable().GetContent())
	if err != nil {
		return "", &domain.IngestionError{Path: path, Reason: "failed to walk docx body", Err: err}
	}

	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString(p)
		b.WriteString("\n")
	}
	for _, c := range cells {
		b.WriteString(c)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// splitDocxContent walks the WordprocessingML body and separates free
// paragraph text from table cell text. Cells arrive row-major because that
// is their order in the document stream.
func splitDocxContent(content string) (paragraphs, cells []string, err error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		tableDepth int
		inText     bool
		current    strings.Builder
		inPara     bool
		inCell     bool
	)

	flush := func(into *[]string) {
		if s := strings.TrimSpace(current.String()); s != "" {
			*into = append(*into, s)
		}
		current.Reset()
	}

	for {
		token, tokenErr := decoder.Token()
		if tokenErr != nil {
			break
		}
		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tbl":
				tableDepth++
			case "tc":
				inCell = true
				current.Reset()
			case "p":
				if tableDepth == 0 {
					inPara = true
					current.Reset()
				}
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "tc":
				if inCell {
					flush(&cells)
					inCell = false
				}
			case "p":
				if inPara && tableDepth == 0 {
					flush(&paragraphs)
					inPara = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && (inPara || inCell) {
				current.Write(el)
			}
		}
	}

	return paragraphs, cells, nil
}
