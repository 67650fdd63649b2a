package easel

// PatchOp identifies the field group a Patch rewrites.
type PatchOp uint8

const (
	PatchNone       PatchOp = iota // no change
	PatchMove                      // set anchor to Value
	PatchResize                    // set extents to Value
	PatchBeginEdit                 // TextBox: IsEditing = true
	PatchCommitText                // TextBox: Text = Text, IsEditing = false
)

// Patch is a geometry or content change aimed at a single shape by id. It is
// the data form of a replace-by-identity updater: Apply leaves every shape
// with another id untouched.
type Patch struct {
	ID    string
	Op    PatchOp
	Value Vec2
	Text  string
}

// Apply returns s with the patch applied if s is the target, otherwise s
// unchanged. CircleBox extent rules are enforced per axis, so a resize toward
// a negative width keeps the old width but still applies a valid height.
func (p Patch) Apply(s Shape) Shape {
	if s.id != p.ID {
		return s
	}
	c := s.Clone()
	switch p.Op {
	case PatchMove:
		c.SetPosition(p.Value.X, p.Value.Y)
	case PatchResize:
		c.SetSize(p.Value.X, p.Value.Y)
	case PatchBeginEdit:
		c.SetEditing(true)
	case PatchCommitText:
		if c.SetText(p.Text) {
			c.SetEditing(false)
		}
	case PatchNone:
	}
	return c
}
