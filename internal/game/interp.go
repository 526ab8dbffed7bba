package game

// Interp smooths the head's hop between its last two cells for
// rendering. Progress advances a fixed step per render call rather
// than by elapsed time, so the glide feel tracks the frame rate while
// all gameplay timing stays on the game clock. The output is purely
// visual and never feeds back into the segment list.
type Interp struct {
	Progress   float64
	srcX, srcY float64
	dstX, dstY float64
}

// Snap places both endpoints on p with the glide finished. Used at
// spawn, where there is no previous cell to glide from.
func (ip *Interp) Snap(p Pos) {
	ip.srcX, ip.srcY = float64(p.X), float64(p.Y)
	ip.dstX, ip.dstY = ip.srcX, ip.srcY
	ip.Progress = 1
}

// Retarget starts a fresh glide from src to dst.
func (ip *Interp) Retarget(src, dst Pos) {
	ip.srcX, ip.srcY = float64(src.X), float64(src.Y)
	ip.dstX, ip.dstY = float64(dst.X), float64(dst.Y)
	ip.Progress = 0
}

// Advance moves progress one fixed step toward 1.
func (ip *Interp) Advance() {
	ip.Progress = clamp(ip.Progress+InterpStep, 0, 1)
}

// Head returns the eased head position in cell units.
func (ip *Interp) Head() (x, y float64) {
	t := easeInOutQuad(ip.Progress)
	return lerp(ip.srcX, ip.dstX, t), lerp(ip.srcY, ip.dstY, t)
}

// easeInOutQuad accelerates through the first half of the glide and
// brakes through the second.
func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}
