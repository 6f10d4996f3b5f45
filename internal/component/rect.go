package component

// Rect is an axis-aligned collision footprint with (X, Y) at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o overlap. Edges are inclusive, so two
// rectangles that merely touch collide.
func (r Rect) Overlaps(o Rect) bool {
	return o.X+o.W >= r.X && r.X+r.W >= o.X &&
		o.Y+o.H >= r.Y && r.Y+r.H >= o.Y
}

// Bounded is anything with a collision footprint.
type Bounded interface {
	Bounds() Rect
}

// Collides is the symmetric pairwise collision test used by combat.
func Collides(a, b Bounded) bool {
	return a.Bounds().Overlaps(b.Bounds())
}
