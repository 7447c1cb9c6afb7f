package prompt

import (
	"fmt"
	"strings"

	"github.com/satriadwi/ruangperan/backend/internal/model/persona"
)

// FormattingDirective is appended to every composed instruction so the
// model answers in plain paragraphs. Upstream is not guaranteed to obey it;
// the reply is returned verbatim either way.
const FormattingDirective = "PENTING: Format seluruh jawaban Anda sebagai teks biasa dalam paragraf yang rapi. Jangan gunakan format Markdown seperti tanda bintang (*) untuk daftar, tebal, atau miring."

const redirectClause = "Jika pengguna bertanya di luar bidang Anda, tolak dengan sopan menggunakan kalimat berikut sebelum mengarahkan percakapan kembali ke topik Anda: %q"

// template holds the per-persona pieces the composer assembles.
type template struct {
	instruction string
	redirect    string
}

// Composer maps persona identifiers to system instructions. It is built
// once from the persona set and read-only afterwards, so Compose is pure
// and deterministic.
type Composer struct {
	templates map[string]template
}

// NewComposer builds the lookup table from the supplied personas. The set
// is expected to contain the default persona; it backs the fallback for
// unknown identifiers.
func NewComposer(personas []persona.Persona) *Composer {
	templates := make(map[string]template, len(personas))
	for _, p := range personas {
		templates[p.ID] = template{instruction: p.Instruction, redirect: p.Redirect}
	}
	return &Composer{templates: templates}
}

// Compose returns the full system instruction for a persona: behavioral
// instruction, the redirect clause for redirect-capable personas, and the
// mandatory formatting directive as the suffix. Unknown identifiers fall
// back to the default persona.
func (c *Composer) Compose(personaID string) string {
	tpl, ok := c.templates[personaID]
	if !ok {
		tpl = c.templates[persona.DefaultID]
	}

	var b strings.Builder
	b.WriteString(tpl.instruction)
	if tpl.redirect != "" {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf(redirectClause, tpl.redirect))
	}
	b.WriteString("\n\n")
	b.WriteString(FormattingDirective)
	return b.String()
}
