// Package gemini assembles conversation payloads for the Google
// generative-language API and unwraps its replies.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/satriadwi/ruangperan/backend/internal/config"
	"github.com/satriadwi/ruangperan/backend/internal/model/chat"
	"github.com/satriadwi/ruangperan/backend/internal/service/prompt"
)

// Fallback user instruction when a turn carries an attachment but no text.
const attachmentFallback = "Jelaskan atau analisis isi lampiran ini."

const (
	docDelimiterStart = "--- ISI DOKUMEN %q ---"
	docDelimiterEnd   = "--- AKHIR DOKUMEN ---"
)

// Extractor converts a document attachment to plain text.
type Extractor interface {
	Supports(mimeType string) bool
	Extract(att chat.Attachment) (string, error)
}

// generator is the single upstream round trip, narrowed for tests.
type generator interface {
	generate(ctx context.Context, system string, history []*genai.Content, parts []genai.Part) (*genai.GenerateContentResponse, error)
}

// Service is the request assembler. It is stateless across calls: the
// caller supplies the transcript snapshot every turn because upstream keeps
// no memory between requests.
type Service struct {
	composer  *prompt.Composer
	extractor Extractor
	gen       generator
	timeout   time.Duration
	closer    func() error
}

// NewService dials the generative-language API with the configured key.
func NewService(ctx context.Context, cfg config.AIConfig, composer *prompt.Composer, extractor Extractor) (*Service, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Service{
		composer:  composer,
		extractor: extractor,
		gen:       &sdkGenerator{client: client, model: cfg.Model},
		timeout:   cfg.Timeout,
		closer:    client.Close,
	}, nil
}

// Close releases the upstream client.
func (s *Service) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// Reply maps the transcript snapshot to ordered upstream turns, appends the
// new user turn, issues one blocking round trip, and returns the extracted
// reply text verbatim.
func (s *Service) Reply(ctx context.Context, personaID, text string, history []chat.Message, att *chat.Attachment) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" && att.Empty() {
		return "", ErrEmptyRequest
	}

	system := s.composer.Compose(personaID)
	parts, err := s.userParts(text, att)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.gen.generate(ctx, system, historyContents(history), parts)
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			log.Printf("[gemini] upstream status %d for persona=%s", gerr.Code, personaID)
			return "", &UpstreamError{StatusCode: gerr.Code, Body: gerr.Body}
		}
		return "", &UpstreamError{Body: err.Error()}
	}

	reply, err := replyText(resp)
	if err != nil {
		return "", err
	}

	log.Printf("[gemini] reply for persona=%s, length=%d", personaID, len(reply))
	return reply, nil
}

// historyContents tags each snapshot entry with the upstream role. Order is
// preserved exactly; the API is order-sensitive.
func historyContents(history []chat.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "model"
		if msg.Sender == chat.SenderUser {
			role = "user"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

// userParts builds the new turn: primary text, then either an inline binary
// part for images or delimited extracted text for documents. Upstream only
// accepts inline binary for image types.
func (s *Service) userParts(text string, att *chat.Attachment) ([]genai.Part, error) {
	primary := text
	if primary == "" {
		primary = attachmentFallback
	}
	parts := []genai.Part{genai.Text(primary)}

	if att.Empty() {
		return parts, nil
	}

	if att.IsImage() {
		parts = append(parts, genai.Blob{MIMEType: att.MIMEType, Data: att.Data})
		return parts, nil
	}

	extracted, err := s.extractor.Extract(*att)
	if err != nil {
		return nil, &AttachmentError{Filename: att.Filename, Err: err}
	}

	doc := fmt.Sprintf(docDelimiterStart, att.Filename) + "\n" + extracted + "\n" + docDelimiterEnd
	parts = append(parts, genai.Text(doc))
	return parts, nil
}

// replyText validates the response shape defensively before trusting it.
func replyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrInvalidUpstreamResponse
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrInvalidUpstreamResponse
	}
	text, ok := content.Parts[0].(genai.Text)
	if !ok {
		return "", ErrInvalidUpstreamResponse
	}
	return string(text), nil
}

// sdkGenerator performs the real round trip through the SDK's chat session,
// which carries prior turns and the system instruction.
type sdkGenerator struct {
	client *genai.Client
	model  string
}

func (g *sdkGenerator) generate(ctx context.Context, system string, history []*genai.Content, parts []genai.Part) (*genai.GenerateContentResponse, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	session := model.StartChat()
	session.History = history
	return session.SendMessage(ctx, parts...)
}
