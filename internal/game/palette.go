package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Background RGB
	BoardA     RGB
	BoardB     RGB
	BoardEdge  RGB

	Head      RGB
	Body      RGB
	BodyDim   RGB
	GhostHead RGB
	GhostBody RGB
	Eye       RGB

	Food         RGB
	PickupSpeed  RGB
	PickupSlow   RGB
	PickupGhost  RGB
	PickupPoints RGB

	Text    RGB
	TextDim RGB
	Danger  RGB
	Gold    RGB
}{
	Background: RGB{R: 16, G: 18, B: 22},
	BoardA:     RGB{R: 30, G: 34, B: 40},
	BoardB:     RGB{R: 36, G: 40, B: 47},
	BoardEdge:  RGB{R: 70, G: 78, B: 92},

	Head:      RGB{R: 120, G: 255, B: 120},
	Body:      RGB{R: 70, G: 200, B: 90},
	BodyDim:   RGB{R: 40, G: 130, B: 60},
	GhostHead: RGB{R: 150, G: 230, B: 255},
	GhostBody: RGB{R: 90, G: 160, B: 220},
	Eye:       RGB{R: 18, G: 30, B: 20},

	Food:         RGB{R: 255, G: 90, B: 80},
	PickupSpeed:  RGB{R: 255, G: 210, B: 70},
	PickupSlow:   RGB{R: 140, G: 110, B: 255},
	PickupGhost:  RGB{R: 120, G: 230, B: 255},
	PickupPoints: RGB{R: 255, G: 150, B: 220},

	Text:    RGB{R: 235, G: 238, B: 245},
	TextDim: RGB{R: 150, G: 155, B: 165},
	Danger:  RGB{R: 255, G: 80, B: 80},
	Gold:    RGB{R: 255, G: 215, B: 90},
}

// PickupColor returns the display colour for an effect kind.
func PickupColor(kind EffectKind) RGB {
	switch kind {
	case EffectSpeed:
		return Palette.PickupSpeed
	case EffectSlow:
		return Palette.PickupSlow
	case EffectGhost:
		return Palette.PickupGhost
	case EffectPoints:
		return Palette.PickupPoints
	}
	return Palette.Text
}
