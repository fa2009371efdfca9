package core

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpSquare
	OpText
)

// DrawOp is one recorded Surface call.
type DrawOp struct {
	Kind  OpKind
	X, Y  int
	Size  int // square size or font size
	Text  string
	Color Color
}

// Canvas is a Surface that records operations into a display list.
// Hosts whose draw phase is separate from their update phase replay it later.
type Canvas struct {
	ops []DrawOp
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Clear drops everything recorded so far and records a clear.
func (c *Canvas) Clear(col Color) {
	c.ops = append(c.ops[:0], DrawOp{Kind: OpClear, Color: col})
}

// FillSquare records a filled square.
func (c *Canvas) FillSquare(x, y, size int, col Color) {
	c.ops = append(c.ops, DrawOp{Kind: OpSquare, X: x, Y: y, Size: size, Color: col})
}

// DrawText records a text draw.
func (c *Canvas) DrawText(text string, x, y, fontSize int, col Color) {
	c.ops = append(c.ops, DrawOp{Kind: OpText, X: x, Y: y, Size: fontSize, Text: text, Color: col})
}

// Ops returns the recorded operations in draw order.
func (c *Canvas) Ops() []DrawOp {
	return c.ops
}

// Texts returns the text of every recorded text op.
func (c *Canvas) Texts() []string {
	var out []string
	for _, op := range c.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Squares returns the recorded squares drawn with the given color.
func (c *Canvas) Squares(col Color) []DrawOp {
	var out []DrawOp
	for _, op := range c.ops {
		if op.Kind == OpSquare && op.Color == col {
			out = append(out, op)
		}
	}
	return out
}

// Replay issues the recorded operations against dst.
func (c *Canvas) Replay(dst Surface) {
	for _, op := range c.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear(op.Color)
		case OpSquare:
			dst.FillSquare(op.X, op.Y, op.Size, op.Color)
		case OpText:
			dst.DrawText(op.Text, op.X, op.Y, op.Size, op.Color)
		}
	}
}
