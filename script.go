package easel

import (
	"encoding/json"
	"fmt"
	"strings"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Steps  int     `json:"steps,omitempty"`

	Kind      string `json:"kind,omitempty"`
	ID        string `json:"id,omitempty"`
	Color     string `json:"color,omitempty"`
	Text      string `json:"text,omitempty"`
	FontColor string `json:"fontColor,omitempty"`
	Property  string `json:"property,omitempty"`
	Value     string `json:"value,omitempty"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a recorded sequence of editor actions: shape creation, pointer
// events, text commits and property edits. Scripts drive an Editor through
// the same entry points a host uses, which makes them handy for reproducing
// interaction bugs and for tests.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON input script of the form
//
//	{"steps": [{"action": "add", "kind": "text", "x": 10, "y": 10, "width": 150, "height": 50},
//	           {"action": "drag", "fromX": 20, "fromY": 20, "toX": 120, "toY": 80, "steps": 4}]}
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps in the script.
func (sc *Script) Len() int {
	return len(sc.steps)
}

// Play runs every step against ed in order. It stops at the first step that
// cannot be executed (unknown action, kind or property, duplicate id) and
// reports it with its position. Pointer steps that hit nothing and rejected
// property values are not errors; they are no-ops, as they are for a host.
func (sc *Script) Play(ed *Editor) error {
	for i, st := range sc.steps {
		if err := sc.play(ed, st); err != nil {
			return fmt.Errorf("script step %d (%s): %w", i, st.Action, err)
		}
	}
	return nil
}

func (sc *Script) play(ed *Editor, st scriptStep) error {
	switch strings.ToLower(st.Action) {
	case "add":
		kind, err := parseKind(st.Kind)
		if err != nil {
			return err
		}
		_, err = ed.Add(kind, st.X, st.Y, st.Width, st.Height, AddOptions{
			ID:        st.ID,
			Color:     st.Color,
			Text:      st.Text,
			FontColor: st.FontColor,
		})
		return err
	case "press":
		ed.InjectPress(st.X, st.Y)
	case "move":
		ed.InjectMove(st.X, st.Y)
	case "release":
		ed.InjectRelease(st.X, st.Y)
	case "click":
		ed.InjectClick(st.X, st.Y)
	case "doubleclick":
		ed.InjectDoubleClick(st.X, st.Y)
	case "drag":
		ed.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Steps)
	case "commit":
		ed.CommitText(st.ID, st.Text)
		return nil
	case "edit":
		prop, ok := ParseProperty(st.Property)
		if !ok {
			return fmt.Errorf("unknown property %q", st.Property)
		}
		ed.EditProperty(prop, st.Value)
		return nil
	case "remove":
		return ed.Remove(st.ID)
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	ed.Drain()
	return nil
}

// parseKind maps a kind tag ("box", "circle", "text") to a Kind.
func parseKind(tag string) (Kind, error) {
	for _, k := range []Kind{KindPlainBox, KindCircleBox, KindTextBox} {
		if strings.EqualFold(tag, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", tag)
}
