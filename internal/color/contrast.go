package color

// DefaultThreshold is the minimum contrast ratio used when none is configured.
const DefaultThreshold = 2.0

// Luminance returns the WCAG relative luminance of v, from 0 (black) to 1
// (white).
func Luminance(v Value) float64 {
	r, g, b := v.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between a and b, ranging from 1 to
// 21. The order of the arguments does not matter.
func Contrast(a, b Value) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Checker decides whether a color is legible enough on a background.
type Checker struct {
	Background Value
	Threshold  float64
}

// NewChecker creates a checker against the default Background.
func NewChecker(threshold float64) Checker {
	return Checker{
		Background: Background,
		Threshold:  threshold,
	}
}

// Ratio returns the contrast between v and the checker's background.
func (c Checker) Ratio(v Value) float64 {
	return Contrast(v, c.Background)
}

// Acceptable returns true if v contrasts with the background by strictly more
// than the threshold.
func (c Checker) Acceptable(v Value) bool {
	return c.Ratio(v) > c.Threshold
}
