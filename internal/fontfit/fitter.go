package fontfit

import (
	"errors"
	"math"
)

// ErrNotLaidOut is returned when the box has no usable area yet. Callers
// retry after a short delay instead of applying a degenerate size.
var ErrNotLaidOut = errors.New("fontfit: container not laid out")

// Attrs are the font attributes the measurer renders with
type Attrs struct {
	Bold      bool
	Monospace bool
}

// Measurer reports the exact rendered size of text at a font size in pixels
type Measurer interface {
	Measure(text string, attrs Attrs, size float32) (width, height float32)
}

// MeasurerFunc adapts a function to Measurer
type MeasurerFunc func(text string, attrs Attrs, size float32) (float32, float32)

// Measure calls f
func (f MeasurerFunc) Measure(text string, attrs Attrs, size float32) (float32, float32) {
	return f(text, attrs, size)
}

// Options tune the search
type Options struct {
	MinSize         float32 // floor for the result
	TargetFraction  float32 // share of each box dimension the text may use
	MaxIterations   int
	Epsilon         float32 // stop once the interval is narrower than this
	Shrink          float32 // safety factor applied to the best fit
	MaxWidthFactor  float32 // upper bound heuristic: targetWidth * MaxWidthFactor
	MaxHeightFactor float32 // upper bound heuristic: targetHeight * MaxHeightFactor
}

// DefaultOptions returns the tuning used by the stopwatch display
func DefaultOptions() Options {
	return Options{
		MinSize:         12,
		TargetFraction:  0.8,
		MaxIterations:   25,
		Epsilon:         0.5,
		Shrink:          0.95,
		MaxWidthFactor:  0.8,
		MaxHeightFactor: 1.2,
	}
}

type cacheKey struct {
	width, height float32
	textLen       int
}

// Fitter finds the largest font size at which text fills a target share of a
// box. The last result is memoized until the box or the text length changes.
type Fitter struct {
	measurer Measurer
	attrs    Attrs
	opts     Options

	cached    bool
	key       cacheKey
	size      float32
	probes    int
	lastProbe int
}

// New creates a fitter. Zero-valued option fields fall back to DefaultOptions.
func New(m Measurer, attrs Attrs, opts Options) *Fitter {
	def := DefaultOptions()
	if opts.MinSize <= 0 {
		opts.MinSize = def.MinSize
	}
	if opts.TargetFraction <= 0 {
		opts.TargetFraction = def.TargetFraction
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = def.MaxIterations
	}
	if opts.Epsilon <= 0 {
		opts.Epsilon = def.Epsilon
	}
	if opts.Shrink <= 0 {
		opts.Shrink = def.Shrink
	}
	if opts.MaxWidthFactor <= 0 {
		opts.MaxWidthFactor = def.MaxWidthFactor
	}
	if opts.MaxHeightFactor <= 0 {
		opts.MaxHeightFactor = def.MaxHeightFactor
	}
	return &Fitter{measurer: m, attrs: attrs, opts: opts}
}

// Fit returns the font size for text in a boxW x boxH container
func (f *Fitter) Fit(text string, boxW, boxH float32) (float32, error) {
	if boxW <= 0 || boxH <= 0 {
		return 0, ErrNotLaidOut
	}

	key := cacheKey{width: boxW, height: boxH, textLen: len([]rune(text))}
	if f.cached && f.key == key {
		return f.size, nil
	}

	f.size = f.search(text, boxW, boxH)
	f.key = key
	f.cached = true
	return f.size, nil
}

// Invalidate drops the memoized size
func (f *Fitter) Invalidate() {
	f.cached = false
}

// Probes returns how many times the measurer has been called in total
func (f *Fitter) Probes() int {
	return f.probes
}

// LastSearchProbes returns the measurer calls made by the most recent search
func (f *Fitter) LastSearchProbes() int {
	return f.lastProbe
}

func (f *Fitter) search(text string, boxW, boxH float32) float32 {
	targetW := boxW * f.opts.TargetFraction
	targetH := boxH * f.opts.TargetFraction

	lo := f.opts.MinSize
	hi := min(targetW*f.opts.MaxWidthFactor, targetH*f.opts.MaxHeightFactor)
	best := f.opts.MinSize

	f.lastProbe = 0
	for i := 0; i < f.opts.MaxIterations; i++ {
		mid := (lo + hi) / 2
		w, h := f.measurer.Measure(text, f.attrs, mid)
		f.probes++
		f.lastProbe++

		if w <= targetW && h <= targetH {
			best = mid
			lo = mid
		} else {
			hi = mid
		}

		if hi-lo < f.opts.Epsilon {
			break
		}
	}

	size := float32(math.Floor(float64(best * f.opts.Shrink)))
	return max(f.opts.MinSize, size)
}
