package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// InitFont builds the glyph atlas from the bitmap table below, uploads
// it as a texture, and sets up the text program. No image files are
// involved: the 5x7 font is generated in code.
func (r *Renderer) InitFont() error {
	pix := buildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, FontAtlasW, FontAtlasH, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog

	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2)

	// Text VAO/VBO: streaming quads. Each vertex: pos2 + uv2 + color4.
	var tVAO, tVBO uint32
	gl.GenVertexArrays(1, &tVAO)
	gl.GenBuffers(1, &tVBO)
	gl.BindVertexArray(tVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, tVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.textVAO = tVAO
	r.textVBO = tVBO

	gl.BindVertexArray(0)
	return nil
}

// buildFontAtlas rasterizes the glyph table into an RGBA pixel buffer:
// white where a glyph bit is set, transparent elsewhere, so the
// fragment shader can tint freely.
func buildFontAtlas() []uint8 {
	pix := make([]uint8, FontAtlasW*FontAtlasH*4)
	for i, glyph := range font5x7 {
		cellX := (i % FontCols) * FontCellW
		cellY := (i / FontCols) * FontCellH
		for row := 0; row < 7; row++ {
			bits := glyph[row]
			for col := 0; col < 5; col++ {
				if bits&(1<<(4-col)) == 0 {
					continue
				}
				px := cellX + col
				py := cellY + 1 + row
				off := (py*FontAtlasW + px) * 4
				pix[off+0] = 255
				pix[off+1] = 255
				pix[off+2] = 255
				pix[off+3] = 255
			}
		}
	}
	return pix
}

// DrawChar queues one glyph quad at pixel position (x, y), top-left
// anchored. Characters outside the printable ASCII range are skipped.
func (r *Renderer) DrawChar(c byte, x, y, scale float32, col RGB) {
	if c < 32 || c > 126 {
		return
	}
	idx := int(c) - 32
	cellX := idx % FontCols
	cellY := idx / FontCols

	u0 := float32(cellX*FontCellW) / float32(FontAtlasW)
	v0 := float32(cellY*FontCellH) / float32(FontAtlasH)
	u1 := float32((cellX+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((cellY+1)*FontCellH) / float32(FontAtlasH)

	x1 := x + float32(FontCellW)*scale
	y1 := y + float32(FontCellH)*scale

	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255

	r.textBuf = append(r.textBuf,
		x, y, u0, v0, cr, cg, cb, 1,
		x1, y, u1, v0, cr, cg, cb, 1,
		x1, y1, u1, v1, cr, cg, cb, 1,
		x, y, u0, v0, cr, cg, cb, 1,
		x1, y1, u1, v1, cr, cg, cb, 1,
		x, y1, u0, v1, cr, cg, cb, 1,
	)
}

// DrawString queues a string at pixel position (x, y). Newlines move
// the cursor back to x on the next line.
func (r *Renderer) DrawString(s string, x, y int, scale float32, col RGB) {
	cx := float32(x)
	cy := float32(y)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			cx = float32(x)
			cy += float32(FontCellH) * scale
			continue
		}
		r.DrawChar(s[i], cx, cy, scale, col)
		cx += float32(FontCellW) * scale
	}
}

// TextWidth returns the pixel width of the longest line of s.
func TextWidth(s string, scale float32) int {
	maxLen := 0
	lineLen := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lineLen = 0
			continue
		}
		lineLen++
		if lineLen > maxLen {
			maxLen = lineLen
		}
	}
	return int(float32(maxLen*FontCellW) * scale)
}

// FlushText uploads and draws every queued glyph, then resets the
// buffer. Call once per frame after all DrawString calls.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/8))

	gl.Disable(gl.BLEND)
	r.textBuf = r.textBuf[:0]
}

// font5x7 holds one 5x7 bitmap per printable ASCII character (32-126),
// row-major, bit 4 = leftmost pixel.
var font5x7 = [95][7]byte{
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // space
	{0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04}, // !
	{0x0A, 0x0A, 0x0A, 0x00, 0x00, 0x00, 0x00}, // "
	{0x0A, 0x0A, 0x1F, 0x0A, 0x1F, 0x0A, 0x0A}, // #
	{0x04, 0x0F, 0x14, 0x0E, 0x05, 0x1E, 0x04}, // $
	{0x18, 0x19, 0x02, 0x04, 0x08, 0x13, 0x03}, // %
	{0x0C, 0x12, 0x14, 0x08, 0x15, 0x12, 0x0D}, // &
	{0x0C, 0x04, 0x08, 0x00, 0x00, 0x00, 0x00}, // '
	{0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02}, // (
	{0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08}, // )
	{0x00, 0x04, 0x15, 0x0E, 0x15, 0x04, 0x00}, // *
	{0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00}, // +
	{0x00, 0x00, 0x00, 0x00, 0x0C, 0x04, 0x08}, // ,
	{0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00}, // -
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C}, // .
	{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x00}, // /
	{0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E}, // 0
	{0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E}, // 1
	{0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F}, // 2
	{0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E}, // 3
	{0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02}, // 4
	{0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E}, // 5
	{0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E}, // 6
	{0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08}, // 7
	{0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E}, // 8
	{0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C}, // 9
	{0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00}, // :
	{0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x04, 0x08}, // ;
	{0x02, 0x04, 0x08, 0x10, 0x08, 0x04, 0x02}, // <
	{0x00, 0x00, 0x1F, 0x00, 0x1F, 0x00, 0x00}, // =
	{0x08, 0x04, 0x02, 0x01, 0x02, 0x04, 0x08}, // >
	{0x0E, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04}, // ?
	{0x0E, 0x11, 0x01, 0x0D, 0x15, 0x15, 0x0E}, // @
	{0x0E, 0x11, 0x11, 0x11, 0x1F, 0x11, 0x11}, // A
	{0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E}, // B
	{0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E}, // C
	{0x1C, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1C}, // D
	{0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F}, // E
	{0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10}, // F
	{0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F}, // G
	{0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11}, // H
	{0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E}, // I
	{0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C}, // J
	{0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11}, // K
	{0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F}, // L
	{0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11}, // M
	{0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11}, // N
	{0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E}, // O
	{0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10}, // P
	{0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D}, // Q
	{0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11}, // R
	{0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E}, // S
	{0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04}, // T
	{0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E}, // U
	{0x11, 0x11, 0x11, 0x11, 0x11, 0x0A, 0x04}, // V
	{0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0A}, // W
	{0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11}, // X
	{0x11, 0x11, 0x11, 0x0A, 0x04, 0x04, 0x04}, // Y
	{0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F}, // Z
	{0x0E, 0x08, 0x08, 0x08, 0x08, 0x08, 0x0E}, // [
	{0x00, 0x10, 0x08, 0x04, 0x02, 0x01, 0x00}, // backslash
	{0x0E, 0x02, 0x02, 0x02, 0x02, 0x02, 0x0E}, // ]
	{0x04, 0x0A, 0x11, 0x00, 0x00, 0x00, 0x00}, // ^
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1F}, // _
	{0x08, 0x04, 0x02, 0x00, 0x00, 0x00, 0x00}, // `
	{0x00, 0x00, 0x0E, 0x01, 0x0F, 0x11, 0x0F}, // a
	{0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x1E}, // b
	{0x00, 0x00, 0x0E, 0x10, 0x10, 0x11, 0x0E}, // c
	{0x01, 0x01, 0x0D, 0x13, 0x11, 0x11, 0x0F}, // d
	{0x00, 0x00, 0x0E, 0x11, 0x1F, 0x10, 0x0E}, // e
	{0x06, 0x09, 0x08, 0x1C, 0x08, 0x08, 0x08}, // f
	{0x00, 0x0F, 0x11, 0x11, 0x0F, 0x01, 0x0E}, // g
	{0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x11}, // h
	{0x04, 0x00, 0x0C, 0x04, 0x04, 0x04, 0x0E}, // i
	{0x02, 0x00, 0x06, 0x02, 0x02, 0x12, 0x0C}, // j
	{0x10, 0x10, 0x12, 0x14, 0x18, 0x14, 0x12}, // k
	{0x0C, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E}, // l
	{0x00, 0x00, 0x1A, 0x15, 0x15, 0x11, 0x11}, // m
	{0x00, 0x00, 0x16, 0x19, 0x11, 0x11, 0x11}, // n
	{0x00, 0x00, 0x0E, 0x11, 0x11, 0x11, 0x0E}, // o
	{0x00, 0x00, 0x1E, 0x11, 0x1E, 0x10, 0x10}, // p
	{0x00, 0x00, 0x0D, 0x13, 0x0F, 0x01, 0x01}, // q
	{0x00, 0x00, 0x16, 0x19, 0x10, 0x10, 0x10}, // r
	{0x00, 0x00, 0x0E, 0x10, 0x0E, 0x01, 0x1E}, // s
	{0x08, 0x08, 0x1C, 0x08, 0x08, 0x09, 0x06}, // t
	{0x00, 0x00, 0x11, 0x11, 0x11, 0x13, 0x0D}, // u
	{0x00, 0x00, 0x11, 0x11, 0x11, 0x0A, 0x04}, // v
	{0x00, 0x00, 0x11, 0x11, 0x15, 0x15, 0x0A}, // w
	{0x00, 0x00, 0x11, 0x0A, 0x04, 0x0A, 0x11}, // x
	{0x00, 0x00, 0x11, 0x11, 0x0F, 0x01, 0x0E}, // y
	{0x00, 0x00, 0x1F, 0x02, 0x04, 0x08, 0x1F}, // z
	{0x02, 0x04, 0x04, 0x08, 0x04, 0x04, 0x02}, // {
	{0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04}, // |
	{0x08, 0x04, 0x04, 0x02, 0x04, 0x04, 0x08}, // }
	{0x00, 0x00, 0x08, 0x15, 0x02, 0x00, 0x00}, // ~
}
