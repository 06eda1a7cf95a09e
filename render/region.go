package render

// Region is a rectangle of screen cells
type Region struct {
	X, Y int
	W, H int
}

// Sub returns a nested region with coordinates relative to r, clipped to r
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	return Region{
		X: r.X + x,
		Y: r.Y + y,
		W: max(w, 0),
		H: max(h, 0),
	}
}

// Contains reports whether absolute cell (x, y) is inside r
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports a zero-area region
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// SplitVFixed splits into a top region of fixed height and the remainder
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	topH = min(max(topH, 0), r.H)
	return r.Sub(0, 0, r.W, topH), r.Sub(0, topH, r.W, r.H-topH)
}

// SplitVFixedBottom splits off a bottom region of fixed height
func SplitVFixedBottom(r Region, bottomH int) (top, bottom Region) {
	bottomH = min(max(bottomH, 0), r.H)
	return r.Sub(0, 0, r.W, r.H-bottomH), r.Sub(0, r.H-bottomH, r.W, bottomH)
}

// SplitHFixed splits into a left region of fixed width and the remainder
func SplitHFixed(r Region, leftW int) (left, right Region) {
	leftW = min(max(leftW, 0), r.W)
	return r.Sub(0, 0, leftW, r.H), r.Sub(leftW, 0, r.W-leftW, r.H)
}
