package game

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DrawSprites renders an array of point sprites using the sprite
// program with standard alpha blending. buf format:
// [x, y, size, r, g, b, a, shape] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spURes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and
// radial falloff. buf format matches DrawSprites; RGB values should be
// pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8

	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.glowURes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// SnakeRenderData appends sprite data for the whole snake to buf and
// returns it. The body sits on grid cells; the head uses the eased
// glide position. Ghost mode recolours everything spectral.
func SnakeRenderData(buf []float32, s *Snake, now float64) []float32 {
	ghost := s.HasEffect(EffectGhost, now)

	headCol := Palette.Head
	bodyCol := Palette.Body
	dimCol := Palette.BodyDim
	alpha := float32(1)
	if ghost {
		headCol = Palette.GhostHead
		bodyCol = Palette.GhostBody
		dimCol = Palette.GhostBody.Mul(140)
		alpha = 0.75
	}

	segs := s.Segments()
	n := len(segs)

	// Tail first so the head draws on top of any overlap.
	for i := n - 1; i >= 1; i-- {
		t := float64(i) / float64(n)
		c := lerpRGB(bodyCol, dimCol, t)
		x, y := CellPixel(segs[i])
		buf = append(buf, float32(x), float32(y), float32(CellPx)*0.92,
			float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha, spriteShapeCell)
	}

	hx, hy := s.RenderHead()
	px, py := CellPixelF(hx, hy)
	buf = append(buf, float32(px), float32(py), float32(CellPx)*0.98,
		float32(headCol.R)/255, float32(headCol.G)/255, float32(headCol.B)/255, alpha, spriteShapeCell)

	// Two eye dots, offset toward the travel direction.
	dx, dy := s.Direction().Delta()
	fx, fy := float64(dx), float64(dy)
	ex, ey := -fy, fx // perpendicular
	eyeCol := Palette.Eye
	for _, side := range [2]float64{-1, 1} {
		ox := px + fx*float64(CellPx)*0.22 + ex*side*float64(CellPx)*0.16
		oy := py + fy*float64(CellPx)*0.22 + ey*side*float64(CellPx)*0.16
		buf = append(buf, float32(ox), float32(oy), float32(CellPx)*0.14,
			float32(eyeCol.R)/255, float32(eyeCol.G)/255, float32(eyeCol.B)/255, alpha, spriteShapeCircle)
	}
	return buf
}

// SnakeGlowData appends a soft halo around the head, brighter while
// effects are running so the player can feel them without reading the
// HUD.
func SnakeGlowData(buf []float32, s *Snake, now float64) []float32 {
	hx, hy := s.RenderHead()
	px, py := CellPixelF(hx, hy)

	col := Palette.Head
	in := 0.10
	switch {
	case s.HasEffect(EffectGhost, now):
		col = Palette.GhostHead
		in = 0.22
	case s.HasEffect(EffectSpeed, now):
		col = Palette.PickupSpeed
		in = 0.18
	case s.HasEffect(EffectSlow, now):
		col = Palette.PickupSlow
		in = 0.16
	case s.HasEffect(EffectPoints, now):
		col = Palette.PickupPoints
		in = 0.16
	}
	pulse := in * (0.8 + 0.2*math.Sin(now*0.005))
	buf = append(buf, float32(px), float32(py), float32(CellPx)*2.4,
		float32(col.R)/255*float32(pulse), float32(col.G)/255*float32(pulse), float32(col.B)/255*float32(pulse),
		1, spriteShapeGlow)
	return buf
}
