// Package extract turns document attachments into plain text so they can
// travel upstream as prompt text instead of binary parts.
package extract

import (
	"fmt"
	"os"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"github.com/satriadwi/ruangperan/backend/internal/model/chat"
)

// Service extracts plain text from PDF and DOCX payloads. Parsing goes
// through a spool file that is removed before Extract returns, success or
// failure.
type Service struct {
	spoolDir string
}

// NewService returns an extractor spooling into dir; an empty dir means the
// system temp directory.
func NewService(dir string) *Service {
	return &Service{spoolDir: dir}
}

// Supports reports whether the MIME type has an extractor.
func (s *Service) Supports(mimeType string) bool {
	switch normalize(mimeType) {
	case chat.MIMEPDF, chat.MIMEDocx:
		return true
	}
	return false
}

// Extract returns the plain text of a document attachment. No layout or
// formatting is preserved.
func (s *Service) Extract(att chat.Attachment) (string, error) {
	switch normalize(att.MIMEType) {
	case chat.MIMEPDF:
		return s.withSpool(att.Data, extractPDF)
	case chat.MIMEDocx:
		return s.withSpool(att.Data, extractDOCX)
	}
	return "", fmt.Errorf("no extractor for media type %q", att.MIMEType)
}

// withSpool writes data to a scoped temp file, runs fn against it, and
// removes the file on every path.
func (s *Service) withSpool(data []byte, fn func(path string) (string, error)) (string, error) {
	f, err := os.CreateTemp(s.spoolDir, "ruangperan-att-*")
	if err != nil {
		return "", fmt.Errorf("spool attachment: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("spool attachment: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("spool attachment: %w", err)
	}

	return fn(path)
}

func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only or damaged page, keep going.
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

func extractDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer f.Close()

	text, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func normalize(mimeType string) string {
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
