package chat

import "strings"

// Attachment is a file submitted alongside one turn. It lives for the span
// of a single request and is never stored in transcript history.
type Attachment struct {
	Data     []byte
	MIMEType string
	Filename string
}

// MIME types accepted for non-image attachments.
const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Empty reports whether the attachment carries no payload.
func (a *Attachment) Empty() bool {
	return a == nil || len(a.Data) == 0
}

// IsImage reports whether the attachment can be sent upstream as an inline
// binary part.
func (a *Attachment) IsImage() bool {
	return a != nil && strings.HasPrefix(strings.ToLower(a.MIMEType), "image/")
}

// IsDocument reports whether the attachment is a text-extractable document.
func (a *Attachment) IsDocument() bool {
	if a == nil {
		return false
	}
	switch normalizeMIME(a.MIMEType) {
	case MIMEPDF, MIMEDocx:
		return true
	}
	return false
}

// normalizeMIME strips parameters such as "; charset=..." and lowercases.
func normalizeMIME(mime string) string {
	if idx := strings.IndexByte(mime, ';'); idx >= 0 {
		mime = mime[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mime))
}
