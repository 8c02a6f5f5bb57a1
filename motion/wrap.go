package motion

import gomath "math"

// Span maps a run of destination pixels onto a run of source pixels.
type Span struct {
	Src int // first source pixel, within [0, period)
	Dst int // first destination pixel
	Len int
}

// WrapSpans splits the window [start, start+length) of an infinitely
// repeating axis of the given period into contiguous source runs.
func WrapSpans(start, length, period int) []Span {
	if length <= 0 || period <= 0 {
		return nil
	}
	src := start % period
	if src < 0 {
		src += period
	}

	spans := make([]Span, 0, length/period+2)
	for dst := 0; dst < length; {
		n := min(period-src, length-dst)
		spans = append(spans, Span{Src: src, Dst: dst, Len: n})
		dst += n
		src = 0
	}
	return spans
}

// PixelOrigin converts a scroll offset to the whole pixel the window starts on.
func PixelOrigin(offset float64) int {
	return int(gomath.Floor(offset))
}

// Centered returns the top-left corner that centres a w x h frame in the viewport.
func Centered(viewW, viewH, w, h int) (x, y int) {
	return (viewW - w) / 2, (viewH - h) / 2
}
