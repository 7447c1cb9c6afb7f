// Package session holds the single in-memory conversation state: one
// transcript per persona plus the active selection.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/satriadwi/ruangperan/backend/internal/model/chat"
	"github.com/satriadwi/ruangperan/backend/internal/model/persona"
)

var (
	ErrEmptyTurn    = errors.New("turn has no message and no attachment")
	ErrTurnInFlight = errors.New("previous turn still in flight")
)

// Localized failure notice shown in place of a reply when a turn fails.
const failureNotice = "Maaf, sepertinya ada masalah (%s). Coba lagi nanti ya."

// Replier produces the bot reply for one turn given a read-only transcript
// snapshot.
type Replier interface {
	Reply(ctx context.Context, personaID, text string, history []chat.Message, att *chat.Attachment) (string, error)
}

// Service owns all transcripts. Every persona is seeded with its greeting at
// construction, so a transcript is never empty. One turn may be outstanding
// at a time; a second submission is rejected, not queued.
type Service struct {
	personas persona.Store
	replier  Replier

	mu          sync.Mutex
	active      string
	transcripts map[string][]chat.Message
	inFlight    bool
}

// NewService seeds one transcript per persona and activates the default
// persona when present, the first one otherwise.
func NewService(personas persona.Store, replier Replier) *Service {
	items := personas.List()
	transcripts := make(map[string][]chat.Message, len(items))
	active := ""
	for _, p := range items {
		transcripts[p.ID] = []chat.Message{{
			ID:        uuid.NewString(),
			Sender:    chat.SenderBot,
			Content:   p.Greeting,
			CreatedAt: time.Now().UTC(),
		}}
		if active == "" {
			active = p.ID
		}
	}
	if _, ok := transcripts[persona.DefaultID]; ok {
		active = persona.DefaultID
	}

	return &Service{
		personas:    personas,
		replier:     replier,
		active:      active,
		transcripts: transcripts,
	}
}

// ActivePersona returns the currently selected persona.
func (s *Service) ActivePersona() persona.Persona {
	s.mu.Lock()
	id := s.active
	s.mu.Unlock()
	p, _ := s.personas.FindByID(id)
	return p
}

// SelectPersona switches the active persona and returns its stored
// transcript for re-rendering. Selecting the already-active or an unknown
// persona is a no-op and reports false.
func (s *Service) SelectPersona(id string) ([]chat.Message, bool) {
	if _, ok := s.personas.FindByID(id); !ok {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id == s.active {
		return nil, false
	}
	s.active = id
	return copyMessages(s.transcripts[id]), true
}

// Transcript returns a copy of the stored transcript for a persona.
func (s *Service) Transcript(id string) ([]chat.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs, ok := s.transcripts[id]
	if !ok {
		return nil, false
	}
	return copyMessages(msgs), true
}

// SubmitTurn appends the user message to the active transcript, dispatches
// the turn with a snapshot of the prior context, and appends the reply. On
// failure it appends a flagged notice instead and still returns the error.
// The attachment is consumed by this one call either way.
func (s *Service) SubmitTurn(ctx context.Context, text string, att *chat.Attachment) (chat.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" && att.Empty() {
		return chat.Message{}, ErrEmptyTurn
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return chat.Message{}, ErrTurnInFlight
	}
	s.inFlight = true
	personaID := s.active

	// Snapshot the prior context before appending the new user message;
	// the assembler adds the new turn itself.
	snapshot := snapshotContext(s.transcripts[personaID])

	userMsg := chat.Message{
		ID:        uuid.NewString(),
		Sender:    chat.SenderUser,
		Content:   displayContent(text, att),
		CreatedAt: time.Now().UTC(),
	}
	s.transcripts[personaID] = append(s.transcripts[personaID], userMsg)
	s.mu.Unlock()

	reply, err := s.replier.Reply(ctx, personaID, text, snapshot, att)

	botMsg := chat.Message{
		ID:        uuid.NewString(),
		Sender:    chat.SenderBot,
		CreatedAt: time.Now().UTC(),
	}
	if err != nil {
		botMsg.Content = fmt.Sprintf(failureNotice, failureReason(err))
		botMsg.Notice = true
	} else {
		botMsg.Content = reply
	}

	s.mu.Lock()
	s.transcripts[personaID] = append(s.transcripts[personaID], botMsg)
	s.inFlight = false
	s.mu.Unlock()

	if err != nil {
		return botMsg, err
	}
	return botMsg, nil
}

// snapshotContext copies the transcript minus notices, which never count
// toward upstream context.
func snapshotContext(msgs []chat.Message) []chat.Message {
	out := make([]chat.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Notice {
			continue
		}
		out = append(out, m)
	}
	return out
}

// displayContent renders the attachment marker into the stored user
// message: images as an inline reference, other files as a filename
// annotation.
func displayContent(text string, att *chat.Attachment) string {
	if att.Empty() {
		return text
	}
	marker := fmt.Sprintf("[lampiran: %s]", att.Filename)
	if att.IsImage() {
		marker = fmt.Sprintf("[gambar: %s]", att.Filename)
	}
	if text == "" {
		return marker
	}
	return text + "\n" + marker
}

// failureReason keeps notices free of noisy transport detail.
func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "waktu permintaan habis"
	default:
		return err.Error()
	}
}

func copyMessages(msgs []chat.Message) []chat.Message {
	out := make([]chat.Message, len(msgs))
	copy(out, msgs)
	return out
}
