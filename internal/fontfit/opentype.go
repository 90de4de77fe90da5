package fontfit

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// measureDPI makes one font point equal one pixel, matching fyne's text sizes
const measureDPI = 72

// OpenTypeMeasurer measures text against the Go font family without a
// rendering surface. Monospace attrs select Go Mono, which is also the face
// the stopwatch theme renders digits with.
type OpenTypeMeasurer struct {
	fonts map[Attrs]*opentype.Font
}

// NewOpenTypeMeasurer parses the embedded Go fonts
func NewOpenTypeMeasurer() (*OpenTypeMeasurer, error) {
	sources := map[Attrs][]byte{
		{}:                            goregular.TTF,
		{Bold: true}:                  gobold.TTF,
		{Monospace: true}:             gomono.TTF,
		{Monospace: true, Bold: true}: gomonobold.TTF,
	}

	m := &OpenTypeMeasurer{fonts: make(map[Attrs]*opentype.Font, len(sources))}
	for attrs, data := range sources {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font %+v: %w", attrs, err)
		}
		m.fonts[attrs] = f
	}
	return m, nil
}

// Measure returns the advance width and line height of text at size
func (m *OpenTypeMeasurer) Measure(text string, attrs Attrs, size float32) (float32, float32) {
	f := m.fonts[attrs]
	if f == nil || size <= 0 {
		return 0, 0
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     measureDPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return 0, 0
	}
	defer face.Close()

	width := font.MeasureString(face, text)
	metrics := face.Metrics()
	height := metrics.Ascent + metrics.Descent

	return fixedToFloat(int32(width)), fixedToFloat(int32(height))
}

func fixedToFloat(v int32) float32 {
	return float32(v) / 64
}
