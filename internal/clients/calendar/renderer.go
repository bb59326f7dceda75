package calendar

import (
	"bytes"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const (
	padding       = 24.0
	lineSpacing   = 1.6
	headerSuffix  = " 📅"
	bulletPrefix  = "🔹 "
	minimumHeight = 120
)

type config interface {
	FontPath() string
	FontSize() float64
	Width() int
}

// Renderer draws the date header and one bullet line per description into
// a PNG. Output depends on the arguments only. Emoji and CJK glyphs need a
// font-path, the built-in face draws ASCII only.
type Renderer struct {
	fontPath string
	fontSize float64
	width    int
}

func NewRenderer(config config) (*Renderer, error) {
	r := &Renderer{
		fontPath: config.FontPath(),
		fontSize: config.FontSize(),
		width:    config.Width(),
	}
	if r.fontPath != "" {
		if _, err := gg.LoadFontFace(r.fontPath, r.fontSize); err != nil {
			return nil, errors.Wrap(err, "load calendar font")
		}
	}
	return r, nil
}

func (r *Renderer) Render(day string, descriptions []string) ([]byte, error) {
	lineHeight := r.fontSize * lineSpacing
	height := int(padding*2 + lineHeight*float64(len(descriptions)+1))
	if height < minimumHeight {
		height = minimumHeight
	}

	dc := gg.NewContext(r.width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// faces keep per-glyph caches and are not shared between renders
	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, r.fontSize); err != nil {
			return nil, errors.Wrap(err, "load calendar font")
		}
	}

	y := padding + lineHeight/2
	for i, line := range lines(day, descriptions) {
		if i == 0 {
			dc.SetRGB(0.1, 0.2, 0.5)
		} else {
			dc.SetRGB(0.15, 0.15, 0.15)
		}
		dc.DrawStringAnchored(line, padding, y, 0, 0.5)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}
	return buf.Bytes(), nil
}

func lines(day string, descriptions []string) []string {
	res := make([]string, 0, len(descriptions)+1)
	res = append(res, day+headerSuffix)
	for _, d := range descriptions {
		res = append(res, bulletPrefix+d)
	}
	return res
}
