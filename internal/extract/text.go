package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF   = "application/pdf"
	mimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeWord  = "application/msword"
	mimePlain = "text/plain"
)

// ErrUnsupportedType is returned for file types text cannot be pulled from.
var ErrUnsupportedType = errors.New("unsupported file type")

// TextFromBytes extracts plain text from an uploaded file.
// PDF goes through github.com/ledongthuc/pdf; DOCX is read straight from its zip container.
func TextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalized := NormalizeMimeType(mimeType, fileName, data); normalized {
	case mimePDF:
		return extractPDF(data)
	case mimeDOCX:
		return extractDOCX(data)
	case mimePlain:
		if !utf8.Valid(data) {
			return "", errors.New("text file is not valid UTF-8")
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, normalized)
	}
}

// NormalizeMimeType resolves the effective type of an upload from its declared
// type, its extension and its content. Browsers label .docx as application/msword
// or application/zip often enough that the container is checked directly.
func NormalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF, mimeDOCX:
		return clean
	case "", "application/octet-stream", "application/zip", mimeWord:
	default:
		if strings.HasPrefix(clean, "text/") {
			return mimePlain
		}
		return clean
	}

	if isDOCX(data) {
		return mimeDOCX
	}
	if clean == mimeWord {
		return mimeWord
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".txt", ".md":
		return mimePlain
	}

	sniffed := strings.Split(http.DetectContentType(data), ";")[0]
	switch {
	case sniffed == mimePDF:
		return mimePDF
	case strings.HasPrefix(sniffed, "text/"):
		return mimePlain
	case clean == "":
		return sniffed
	default:
		return clean
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func isDOCX(data []byte) bool {
	_, err := docxDocument(data)
	return err == nil
}

func docxDocument(data []byte) (*zip.File, error) {
	if len(data) == 0 {
		return nil, errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return f, nil
		}
	}
	return nil, errors.New("document.xml file not found")
}

func extractDOCX(data []byte) (string, error) {
	docFile, err := docxDocument(data)
	if err != nil {
		return "", err
	}
	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return stripDocxXML(string(raw)), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.StartElement:
			if t.Name.Local == "tab" {
				buf.WriteString("\t")
			}
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
