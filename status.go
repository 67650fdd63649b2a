package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// statusHold and statusFade are how long a status message stays fully
// visible and how long it then takes to fade out, in seconds.
const (
	statusHold = 1.2
	statusFade = 0.8
)

// statusLine is the host's transient one-line message (e.g. "added text-3").
// Its alpha is driven by a tween; there is no global animation manager, the
// host calls update once per frame.
type statusLine struct {
	text  string
	alpha float64
	hold  float32
	fade  *gween.Tween
}

// show replaces the message and restarts its fade.
func (s *statusLine) show(text string) {
	s.text = text
	s.alpha = 1
	s.hold = statusHold
	s.fade = gween.New(1, 0, statusFade, ease.InQuad)
}

// update advances the fade by dt seconds.
func (s *statusLine) update(dt float32) {
	if s.fade == nil {
		return
	}
	if s.hold > 0 {
		s.hold -= dt
		return
	}
	val, finished := s.fade.Update(dt)
	s.alpha = float64(val)
	if finished {
		s.fade = nil
		s.text = ""
		s.alpha = 0
	}
}

// visible reports whether there is anything to draw.
func (s *statusLine) visible() bool {
	return s.text != "" && s.alpha > 0
}
