package ui

// Base holds the size a component was given by its parent. Components
// render nothing until they have been sized.
type Base struct {
	width, height int
}

// SetSize records the component dimensions, treating negatives as zero.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// Sized reports whether the component has room to draw.
func (b Base) Sized() bool {
	return b.width > 0 && b.height > 0
}

// Rows returns the lines left for content once overhead lines are taken.
func (b Base) Rows(overhead int) int {
	return max(b.height-overhead, 0)
}
