package request_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/satriadwi/ruangperan/backend/internal/handler/request"
	"github.com/satriadwi/ruangperan/backend/internal/model/chat"
)

const maxUpload = 10 << 20

func TestParseTurnJSONDataURI(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\nimg"))
	body := `{"message":"Apa ini?","role":"general","file":{"data":"data:image/png;base64,` + encoded + `","mimeType":"image/png","name":"kucing.png"}}`

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	turn, cleanup, err := request.ParseTurn(req, maxUpload)
	if err != nil {
		t.Fatalf("ParseTurn err: %v", err)
	}
	defer cleanup()

	if turn.Message != "Apa ini?" || turn.Role != "general" {
		t.Fatalf("unexpected turn: %+v", turn)
	}
	if turn.Attachment == nil || !turn.Attachment.IsImage() {
		t.Fatalf("attachment not decoded: %+v", turn.Attachment)
	}
	if !bytes.HasPrefix(turn.Attachment.Data, []byte("\x89PNG")) {
		t.Fatal("data URI payload decoded incorrectly")
	}
}

func TestParseTurnJSONRawBase64(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 ..."))
	body := `{"message":"","file":{"data":"` + encoded + `","mimeType":"application/pdf","name":"laporan.pdf"}}`

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	turn, cleanup, err := request.ParseTurn(req, maxUpload)
	if err != nil {
		t.Fatalf("ParseTurn err: %v", err)
	}
	defer cleanup()

	if turn.Attachment == nil || !turn.Attachment.IsDocument() {
		t.Fatalf("pdf attachment not decoded: %+v", turn.Attachment)
	}
}

func TestParseTurnJSONBadBase64(t *testing.T) {
	body := `{"message":"x","file":{"data":"!!not-base64!!","mimeType":"image/png","name":"x.png"}}`

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if _, _, err := request.ParseTurn(req, maxUpload); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

func TestParseTurnJSONHistory(t *testing.T) {
	body := `{"message":"Lanjut","history":[{"sender":"bot","content":"Halo!"},{"sender":"user","content":"Hai"}]}`

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	turn, _, err := request.ParseTurn(req, maxUpload)
	if err != nil {
		t.Fatalf("ParseTurn err: %v", err)
	}
	if len(turn.History) != 2 {
		t.Fatalf("history length: got %d want 2", len(turn.History))
	}
	if turn.History[0].Sender != chat.SenderBot || turn.History[1].Sender != chat.SenderUser {
		t.Fatalf("history order lost: %+v", turn.History)
	}
}

func TestParseTurnMultipartDocxByExtension(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("message", "Ringkas dokumen ini")
	fw, _ := mw.CreateFormFile("file", "laporan.docx")
	// Zip magic: DOCX uploads without a declared type sniff as plain zip.
	fw.Write([]byte("PK\x03\x04rest-of-archive"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/chat", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	turn, cleanup, err := request.ParseTurn(req, maxUpload)
	if err != nil {
		t.Fatalf("ParseTurn err: %v", err)
	}
	defer cleanup()

	if turn.Attachment == nil || turn.Attachment.MIMEType != chat.MIMEDocx {
		t.Fatalf("docx not resolved by extension: %+v", turn.Attachment)
	}
}

func TestParseTurnMultipartNoFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("message", "Tanpa lampiran")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/chat", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	turn, cleanup, err := request.ParseTurn(req, maxUpload)
	if err != nil {
		t.Fatalf("ParseTurn err: %v", err)
	}
	defer cleanup()

	if turn.Attachment != nil {
		t.Fatal("expected no attachment")
	}
}

func TestParseTurnUnsupportedType(t *testing.T) {
	body := `{"message":"x","file":{"data":"` + base64.StdEncoding.EncodeToString([]byte("plain text")) + `","mimeType":"text/plain","name":"catatan.txt"}}`

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if _, _, err := request.ParseTurn(req, maxUpload); !errors.Is(err, request.ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestParseTurnFileTooLarge(t *testing.T) {
	big := bytes.Repeat([]byte("a"), 64)
	body := `{"message":"x","file":{"data":"` + base64.StdEncoding.EncodeToString(big) + `","mimeType":"image/png","name":"x.png"}}`

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if _, _, err := request.ParseTurn(req, 16); err == nil {
		t.Fatal("expected error for oversized file")
	}
}
