// Package easel is the interaction engine of a small drawing-surface editor
// for [Ebitengine].
//
// Easel keeps a collection of shapes (plain boxes, ellipses and text boxes),
// decides which shape the pointer is on, and turns press, move, release,
// click and double-click events into drags, resizes, selection and text
// edits. Rendering goes through a small [Surface] interface with an
// Ebitengine implementation for windows and a [gg] implementation for
// headless images.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	ed := easel.NewEditor()
//	ed.Add(easel.KindTextBox, 10, 10, 150, 50, easel.AddOptions{Text: "hello"})
//	cfg, _ := easel.LoadRunConfig()
//	easel.Run(ed, cfg)
//
// For full control, feed pointer events yourself and paint with
// [Editor.Render]:
//
//	p := easel.CanvasPoint(client, canvasOrigin)
//	if ed.Press(p) { redraw() }
//	...
//	ed.Render(surface)
//
// # Shapes
//
// A [Shape] is a value. Kind-specific fields exist only for the kinds that own
// them, and every kind-dependent behavior switches over the closed [Kind]
// set. Shapes live in a [Store], which hands out copies and accepts changes
// only through updaters that keep the shape's id and kind. Ids are generated
// per store as "box-1", "circle-2", "text-3" and so on.
//
// # Picking
//
// [Pick] chooses among the shapes under the pointer by [Shape.Index]: the
// highest index wins and ties go to the shape added later. Paint order is
// collection order and is not affected by Index.
//
// # Gestures
//
// The gesture functions ([Press], [Move], [Release], [Click], [DoubleClick])
// are pure: they take the shapes and the current [State] and return the next
// state or a [Patch]. [Editor] wraps them with a Store and a logger.
//
// A press on the activated shape's resize handle starts a resize; any other
// hit starts a drag that keeps the pointer at the same spot inside the shape.
// Clicking the background leaves the selection alone. Double-clicking a text
// box puts it into editing until [Editor.CommitText] is called.
//
// # Scripted input
//
// [Editor.InjectClick], [Editor.InjectDrag] and friends queue synthetic
// pointer events, and [LoadScript] reads a whole JSON sequence of them.
// Both run through the same entry points as real input, which makes
// interaction bugs reproducible in tests.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/fogleman/gg
package easel
