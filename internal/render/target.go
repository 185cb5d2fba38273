package render

import "image"

// Target receives draw requests. Targets clip to their own bounds; callers
// never read anything back.
type Target interface {
	Draw(img image.Image, x, y, w, h int)
}

// DrawCall is one recorded Draw request.
type DrawCall struct {
	Image      image.Image
	X, Y, W, H int
}

// Recorder is a Target that keeps every request in order.
type Recorder struct {
	Calls []DrawCall
}

// Draw implements Target.
func (r *Recorder) Draw(img image.Image, x, y, w, h int) {
	r.Calls = append(r.Calls, DrawCall{Image: img, X: x, Y: y, W: w, H: h})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
