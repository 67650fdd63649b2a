package easel

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
)

// Host colors.
var (
	canvasBackground  = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	toolbarBackground = color.RGBA{R: 0x2b, G: 0x2d, B: 0x33, A: 0xff}
	toolbarText       = color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
	overlayBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xe0, A: 0xff}
	overlayText       = color.RGBA{A: 0xff}
)

const toolbarHelp = "B box  C circle  T text  P property  Del remove"

// Default geometry of shapes added from the toolbar.
var addDefaults = map[Kind]Rect{
	KindPlainBox:  {X: 10, Y: 10, Width: 150, Height: 50},
	KindCircleBox: {X: 10, Y: 10, Width: 80, Height: 80},
	KindTextBox:   {X: 10, Y: 10, Width: 150, Height: 50},
}

// Run opens a window showing ed and drives it from mouse and keyboard input
// until the window is closed. The top CanvasTop pixels hold a toolbar; the
// rest is the canvas.
//
// Queued synthetic events (see InjectPress) take priority over real pointer
// input, one per frame.
func Run(ed *Editor, cfg RunConfig) error {
	surface, err := NewEbitenSurface()
	if err != nil {
		return err
	}
	surface.Background = canvasBackground

	g := &game{
		ed:      ed,
		cfg:     cfg,
		surface: surface,
		log:     ed.log.Named("host"),
		pointer: pointerTracker{window: cfg.DoubleClickWindow()},
		dirty:   true,
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	g.log.Info("window open",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("canvasTop", cfg.CanvasTop))
	return ebiten.RunGame(g)
}

// game implements ebiten.Game around an Editor.
type game struct {
	ed      *Editor
	cfg     RunConfig
	surface *EbitenSurface
	log     *zap.Logger

	pointer pointerTracker
	overlay textOverlay
	prompt  propertyPrompt
	status  statusLine
	chars   []rune

	canvas *ebiten.Image // offscreen canvas, redrawn only when dirty
	dirty  bool
}

// Update processes one frame of input.
func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.status.update(dt)

	if consumed, changed := g.ed.Step(); consumed {
		g.dirty = g.dirty || changed
		g.syncOverlay()
		return nil
	}

	g.updateKeyboard()
	g.updatePointer()
	return nil
}

func (g *game) updatePointer() {
	cx, cy := ebiten.CursorPosition()
	p := CanvasPoint(Vec2{float64(cx), float64(cy)}, g.cfg.CanvasOrigin())
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Pressing the canvas takes focus away from the text overlay. Toolbar
	// presses are swallowed by the tracker and never get here.
	if held && !g.pointer.down && !g.pointer.swallowed && p.Y >= 0 && g.overlay.active() {
		g.dirty = g.overlay.commit(g.ed) || g.dirty
	}

	ev := g.pointer.sample(g.ed, p, held, time.Now())
	g.dirty = g.dirty || ev.changed
	if ev.editing {
		g.syncOverlay()
	}
}

// syncOverlay opens the overlay on a TextBox that entered editing without
// one, e.g. from an injected double click.
func (g *game) syncOverlay() {
	if g.overlay.active() {
		return
	}
	if editing := g.ed.Editing(); len(editing) > 0 {
		g.overlay.open(editing[0])
		g.dirty = true
	}
}

func (g *game) updateKeyboard() {
	g.chars = ebiten.AppendInputChars(g.chars[:0])

	switch {
	case g.overlay.active():
		g.updateOverlayKeys()
	case g.prompt.open:
		g.updatePromptKeys()
	default:
		g.updateShortcuts()
	}
}

func (g *game) updateOverlayKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.dirty = g.overlay.commit(g.ed) || g.dirty
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.dirty = g.overlay.cancel(g.ed) || g.dirty
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.overlay.buf.backspace()
		g.dirty = true
	case len(g.chars) > 0:
		g.overlay.buf.insert(g.chars)
		g.dirty = true
	}
}

func (g *game) updatePromptKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		msg, ok := submitProperty(g.ed, g.prompt.buf.String())
		g.prompt.open = false
		g.status.show(msg)
		g.dirty = g.dirty || ok
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.prompt.open = false
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.prompt.buf.backspace()
	case len(g.chars) > 0:
		g.prompt.buf.insert(g.chars)
	}
}

func (g *game) updateShortcuts() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.add(KindPlainBox)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.add(KindCircleBox)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.add(KindTextBox)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if _, ok := g.ed.Activated(); ok {
			g.prompt.open = true
			g.prompt.buf.reset("")
		} else {
			g.status.show("no shape selected")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		if s, ok := g.ed.Activated(); ok {
			if err := g.ed.Remove(s.id); err != nil {
				g.log.Warn("remove failed", zap.Error(err))
				return
			}
			g.status.show("removed " + s.id)
			g.dirty = true
		}
	}
}

func (g *game) add(kind Kind) {
	r := addDefaults[kind]
	s, err := g.ed.Add(kind, r.X, r.Y, r.Width, r.Height, AddOptions{})
	if err != nil {
		g.log.Warn("add failed", zap.Stringer("kind", kind), zap.Error(err))
		return
	}
	g.status.show("added " + s.id)
	g.dirty = true
}

// Draw paints the toolbar and the canvas.
func (g *game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	top := b.Min.Y + g.cfg.CanvasTop

	if g.canvas == nil || g.canvas.Bounds().Dx() != b.Dx() || g.canvas.Bounds().Dy() != b.Dy()-g.cfg.CanvasTop {
		g.canvas = ebiten.NewImage(b.Dx(), b.Dy()-g.cfg.CanvasTop)
		g.dirty = true
	}
	if g.dirty {
		g.surface.SetTarget(g.canvas)
		g.ed.Render(g.surface)
		g.drawOverlay()
		g.dirty = false
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(b.Min.X), float64(top))
	screen.DrawImage(g.canvas, &op)

	bar := screen.SubImage(image.Rect(b.Min.X, b.Min.Y, b.Max.X, top)).(*ebiten.Image)
	bar.Fill(toolbarBackground)
	g.drawToolbar(bar)
}

func (g *game) drawOverlay() {
	if !g.overlay.active() {
		return
	}
	s, ok := g.ed.Shape(g.overlay.id)
	if !ok {
		return
	}
	b := s.Bounds()
	g.surface.FillRect(b, overlayBackground)
	g.surface.StrokeDashedRect(b, SelectionColor)
	g.surface.FillTextCentered(g.overlay.buf.String()+"|", b.Normalize().Center(), overlayText)
}

func (g *game) drawToolbar(bar *ebiten.Image) {
	b := bar.Bounds()
	line := toolbarHelp
	switch {
	case g.prompt.open:
		line = "property> " + g.prompt.buf.String() + "|"
	case g.overlay.active():
		line = fmt.Sprintf("editing %s: Enter commits, Esc reverts", g.overlay.id)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.Min.X)+8, float64(b.Min.Y)+float64(b.Dy())/2)
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(toolbarText)
	text.Draw(bar, line, g.surface.Face(), op)

	if g.status.visible() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(b.Max.X)-8, float64(b.Min.Y)+float64(b.Dy())/2)
		op.PrimaryAlign = text.AlignEnd
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(toolbarText)
		op.ColorScale.ScaleAlpha(float32(g.status.alpha))
		text.Draw(bar, g.status.text, g.surface.Face(), op)
	}

	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(bar,
			fmt.Sprintf("FPS %.1f TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			b.Min.X+b.Dx()/2, b.Min.Y+(b.Dy()-16)/2)
	}
}

// Layout keeps a 1:1 mapping between window and screen pixels.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
