package easel

import (
	"fmt"
	"strings"
)

// lineBuffer is a single-line text input with the caret at the end.
type lineBuffer struct {
	runes []rune
}

func (b *lineBuffer) reset(s string) { b.runes = append(b.runes[:0], []rune(s)...) }

func (b *lineBuffer) insert(rs []rune) {
	for _, r := range rs {
		if r == '\n' || r == '\r' {
			continue
		}
		b.runes = append(b.runes, r)
	}
}

func (b *lineBuffer) backspace() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

func (b *lineBuffer) String() string { return string(b.runes) }

// --- Text overlay ---

// textOverlay is the host-side editor laid over a TextBox while its
// IsEditing flag is set. The shape does not draw its own text meanwhile.
type textOverlay struct {
	id       string
	original string
	buf      lineBuffer
}

func (o *textOverlay) active() bool { return o.id != "" }

// open starts editing s, seeded with its current text.
func (o *textOverlay) open(s Shape) {
	o.id = s.id
	o.original = s.text
	o.buf.reset(s.text)
}

// commit writes the buffer back to the shape and closes the overlay. This is
// what losing focus does.
func (o *textOverlay) commit(ed *Editor) bool {
	if !o.active() {
		return false
	}
	changed := ed.CommitText(o.id, o.buf.String())
	o.id = ""
	return changed
}

// cancel closes the overlay, writing back the text it started with.
func (o *textOverlay) cancel(ed *Editor) bool {
	if !o.active() {
		return false
	}
	changed := ed.CommitText(o.id, o.original)
	o.id = ""
	return changed
}

// --- Property prompt ---

// propertyPrompt is a one-line "name=value" input that stands in for a
// property panel.
type propertyPrompt struct {
	open bool
	buf  lineBuffer
}

// submitProperty parses "name=value" and applies it to the activated shape.
// It returns a status message and whether the edit was applied.
func submitProperty(ed *Editor, line string) (string, bool) {
	name, value, ok := strings.Cut(line, "=")
	if !ok {
		return fmt.Sprintf("expected name=value, got %q", line), false
	}
	prop, ok := ParseProperty(name)
	if !ok {
		return fmt.Sprintf("unknown property %q", strings.TrimSpace(name)), false
	}
	active, ok := ed.Activated()
	if !ok {
		return "no shape selected", false
	}
	if !ed.EditProperty(prop, value) {
		return fmt.Sprintf("%s unchanged", active.id), false
	}
	return fmt.Sprintf("%s updated", active.id), true
}
