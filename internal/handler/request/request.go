// Package request parses inbound turn submissions, which arrive either as
// JSON (the original client) or as a multipart form carrying a file part.
package request

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/satriadwi/ruangperan/backend/internal/model/chat"
)

// Turn is one decoded submission.
type Turn struct {
	Message    string
	Role       string
	History    []chat.Message
	Attachment *chat.Attachment
}

// ErrUnsupportedFileType rejects attachments outside image/*, PDF and DOCX.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ParseTurn decodes the request body. The returned cleanup releases any
// spooled multipart storage and must be called on every path.
func ParseTurn(r *http.Request, maxUpload int64) (Turn, func(), error) {
	cleanup := func() {}

	mediaType := r.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = mt
	}

	if mediaType == "multipart/form-data" {
		return parseMultipart(r, maxUpload)
	}
	turn, err := parseJSON(r, maxUpload)
	return turn, cleanup, err
}

type filePayload struct {
	Data     string `json:"data"`
	MIMEType string `json:"mimeType"`
	Name     string `json:"name"`
}

type jsonBody struct {
	Message string         `json:"message"`
	Role    string         `json:"role"`
	History []chat.Message `json:"history"`
	File    *filePayload   `json:"file"`
}

func parseJSON(r *http.Request, maxUpload int64) (Turn, error) {
	var body jsonBody
	// Base64 inflates the payload by a third; leave headroom beyond the
	// raw attachment cap.
	if err := json.NewDecoder(io.LimitReader(r.Body, 2*maxUpload)).Decode(&body); err != nil {
		return Turn{}, fmt.Errorf("invalid request body: %w", err)
	}

	turn := Turn{Message: body.Message, Role: body.Role, History: body.History}
	if body.File == nil || body.File.Data == "" {
		return turn, nil
	}

	data := body.File.Data
	// The reference client sends data URIs; accept raw base64 too.
	if strings.HasPrefix(data, "data:") {
		if idx := strings.IndexByte(data, ','); idx >= 0 {
			data = data[idx+1:]
		}
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return Turn{}, fmt.Errorf("invalid file data: %w", err)
	}
	if int64(len(raw)) > maxUpload {
		return Turn{}, fmt.Errorf("file exceeds %d bytes", maxUpload)
	}

	att := &chat.Attachment{
		Data:     raw,
		MIMEType: resolveMIME(body.File.MIMEType, body.File.Name, raw),
		Filename: filepath.Base(body.File.Name),
	}
	if !allowed(att) {
		return Turn{}, ErrUnsupportedFileType
	}
	turn.Attachment = att
	return turn, nil
}

func parseMultipart(r *http.Request, maxUpload int64) (Turn, func(), error) {
	cleanup := func() {}
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		return Turn{}, cleanup, fmt.Errorf("invalid multipart form: %w", err)
	}
	// Uploads past the memory threshold spool to disk; release them with
	// the request.
	cleanup = func() {
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}

	turn := Turn{
		Message: r.FormValue("message"),
		Role:    r.FormValue("role"),
	}

	if raw := strings.TrimSpace(r.FormValue("history")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &turn.History); err != nil {
			return Turn{}, cleanup, fmt.Errorf("invalid history field: %w", err)
		}
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return turn, cleanup, nil
	}
	if err != nil {
		return Turn{}, cleanup, fmt.Errorf("invalid file part: %w", err)
	}
	defer file.Close()

	if header.Size > maxUpload {
		return Turn{}, cleanup, fmt.Errorf("file exceeds %d bytes", maxUpload)
	}
	raw, err := io.ReadAll(io.LimitReader(file, maxUpload+1))
	if err != nil {
		return Turn{}, cleanup, fmt.Errorf("read file part: %w", err)
	}
	if int64(len(raw)) > maxUpload {
		return Turn{}, cleanup, fmt.Errorf("file exceeds %d bytes", maxUpload)
	}

	att := &chat.Attachment{
		Data:     raw,
		MIMEType: resolveMIME(header.Header.Get("Content-Type"), header.Filename, raw),
		Filename: filepath.Base(header.Filename),
	}
	if !allowed(att) {
		return Turn{}, cleanup, ErrUnsupportedFileType
	}
	turn.Attachment = att
	return turn, cleanup, nil
}

// resolveMIME prefers the declared type and falls back to content sniffing.
// DOCX archives sniff as plain zip, so the extension breaks the tie.
func resolveMIME(declared, filename string, data []byte) string {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if mt, _, err := mime.ParseMediaType(declared); err == nil {
		declared = mt
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	sniffed := http.DetectContentType(data)
	if mt, _, err := mime.ParseMediaType(sniffed); err == nil {
		sniffed = mt
	}
	if sniffed == "application/zip" && strings.EqualFold(filepath.Ext(filename), ".docx") {
		return chat.MIMEDocx
	}
	return sniffed
}

func allowed(att *chat.Attachment) bool {
	return att.IsImage() || att.IsDocument()
}
