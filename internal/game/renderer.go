package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Point sprite shape indices, matched by the sprite fragment shader.
const (
	spriteShapeSquare = float32(0)
	spriteShapeCircle = float32(1)
	spriteShapeCell   = float32(2)
	spriteShapeGlow   = float32(1) // glow program ignores shape, circle keeps it harmless
)

// CellPixel returns the pixel center of a grid cell.
func CellPixel(p Pos) (x, y float64) {
	return float64(BoardPadPx) + (float64(p.X)+0.5)*CellPx,
		float64(BoardPadPx) + (float64(p.Y)+0.5)*CellPx
}

// CellPixelF is CellPixel for fractional cell coordinates (the head
// glide).
func CellPixelF(cx, cy float64) (x, y float64) {
	return float64(BoardPadPx) + (cx+0.5)*CellPx,
		float64(BoardPadPx) + (cy+0.5)*CellPx
}

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO
// offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Board program: fullscreen-ish quad, checkerboard in the shader.
	boardProg uint32
	boardVAO  uint32
	boardVBO  uint32

	boardURes    int32
	boardUOrigin int32
	boardUCell   int32
	boardUGrid   int32
	boardUColA   int32
	boardUColB   int32
	boardUEdge   int32

	grid Grid

	// Sprite program: streaming point sprites for snake, pickups, and
	// particles. The glow program shares the VAO, additive blend only.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32
	spURes     int32

	glowProg uint32
	glowURes int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer(g Grid) (*Renderer, error) {
	boardProg, err := linkProgram(boardVertSrc, boardFragSrc)
	if err != nil {
		return nil, fmt.Errorf("board program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(boardProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(boardProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		boardProg:  boardProg,
		spriteProg: spriteProg,
		glowProg:   glowProg,
		grid:       g,
	}

	// Board VAO/VBO: one quad covering the play field plus the edge
	// ring. The window never resizes, so the quad is static.
	var bVAO, bVBO uint32
	gl.GenVertexArrays(1, &bVAO)
	gl.GenBuffers(1, &bVBO)
	gl.BindVertexArray(bVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, bVBO)

	x0 := float32(BoardPadPx - 4)
	y0 := float32(BoardPadPx - 4)
	x1 := float32(BoardPadPx + g.W*CellPx + 4)
	y1 := float32(BoardPadPx + g.H*CellPx + 4)
	quadVerts := [12]float32{
		x0, y0, x1, y0, x1, y1,
		x0, y0, x1, y1, x0, y1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.boardVAO = bVAO
	r.boardVBO = bVBO

	// Board uniforms. Everything but the resolution is fixed.
	gl.UseProgram(boardProg)
	r.boardURes = gl.GetUniformLocation(boardProg, gl.Str("uResolution\x00"))
	r.boardUOrigin = gl.GetUniformLocation(boardProg, gl.Str("uBoardOrigin\x00"))
	r.boardUCell = gl.GetUniformLocation(boardProg, gl.Str("uCellPx\x00"))
	r.boardUGrid = gl.GetUniformLocation(boardProg, gl.Str("uGridSize\x00"))
	r.boardUColA = gl.GetUniformLocation(boardProg, gl.Str("uColA\x00"))
	r.boardUColB = gl.GetUniformLocation(boardProg, gl.Str("uColB\x00"))
	r.boardUEdge = gl.GetUniformLocation(boardProg, gl.Str("uEdge\x00"))
	gl.Uniform2f(r.boardUOrigin, float32(BoardPadPx), float32(BoardPadPx))
	gl.Uniform1f(r.boardUCell, float32(CellPx))
	gl.Uniform2f(r.boardUGrid, float32(g.W), float32(g.H))
	a, b, e := Palette.BoardA, Palette.BoardB, Palette.BoardEdge
	gl.Uniform3f(r.boardUColA, float32(a.R)/255, float32(a.G)/255, float32(a.B)/255)
	gl.Uniform3f(r.boardUColB, float32(b.R)/255, float32(b.G)/255, float32(b.B)/255)
	gl.Uniform3f(r.boardUEdge, float32(e.R)/255, float32(e.G)/255, float32(e.B)/255)

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, shape).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticles*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aShape (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spURes = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowURes = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.boardVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.boardVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.boardProg, r.spriteProg, r.glowProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawBoard fills the play field with the checkerboard and edge ring.
func (r *Renderer) DrawBoard(fbW, fbH int) {
	gl.UseProgram(r.boardProg)
	gl.BindVertexArray(r.boardVAO)
	gl.Uniform2f(r.boardURes, float32(fbW), float32(fbH))
	gl.Disable(gl.BLEND)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
