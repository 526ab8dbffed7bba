package game

import "testing"

func TestFontAtlasCoverage(t *testing.T) {
	pix := buildFontAtlas()

	if len(pix) != FontAtlasW*FontAtlasH*4 {
		t.Fatalf("expected %d atlas bytes, got %d", FontAtlasW*FontAtlasH*4, len(pix))
	}

	// Every printable character except space rasterizes at least one
	// pixel into its atlas cell.
	for c := byte(32); c <= 126; c++ {
		idx := int(c) - 32
		cellX := (idx % FontCols) * FontCellW
		cellY := (idx / FontCols) * FontCellH
		lit := 0
		for row := 0; row < FontCellH; row++ {
			for col := 0; col < FontCellW; col++ {
				off := ((cellY+row)*FontAtlasW + cellX + col) * 4
				if pix[off+3] != 0 {
					lit++
				}
			}
		}
		if c == ' ' {
			if lit != 0 {
				t.Errorf("space should rasterize empty, got %d pixels", lit)
			}
		} else if lit == 0 {
			t.Errorf("glyph %q should rasterize at least one pixel", c)
		}
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("ABC", 2); got != 36 {
		t.Errorf("expected 36, got %d", got)
	}
	// Multi-line width is the longest line.
	if got := TextWidth("hi\nlonger", 1); got != 36 {
		t.Errorf("expected 36, got %d", got)
	}
	if got := TextWidth("", 3); got != 0 {
		t.Errorf("expected 0 for empty text, got %d", got)
	}
}

func TestDrawStringQueuesQuads(t *testing.T) {
	r := &Renderer{}

	// Two characters, six vertices of eight floats each.
	r.DrawString("OK", 0, 0, 1, Palette.Text)
	if len(r.textBuf) != 2*6*8 {
		t.Errorf("expected %d floats queued, got %d", 2*6*8, len(r.textBuf))
	}

	// Unprintable bytes are skipped, newlines only move the cursor.
	r.textBuf = r.textBuf[:0]
	r.DrawString("a\tb\nc", 0, 0, 1, Palette.Text)
	if len(r.textBuf) != 3*6*8 {
		t.Errorf("expected %d floats queued, got %d", 3*6*8, len(r.textBuf))
	}
}
