package animation

// EasingFunc maps normalized time in [0,1] to progress in [0,1]
type EasingFunc func(t float32) float32

var easings = map[string]EasingFunc{
	"linear":        Linear,
	"easeInQuad":    EaseInQuad,
	"easeOutQuad":   EaseOutQuad,
	"easeInOutQuad": EaseInOutQuad,
}

// Easing looks up an easing by name. Unknown names are linear.
func Easing(name string) EasingFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return Linear
}

func Linear(t float32) float32 {
	return t
}

func EaseInQuad(t float32) float32 {
	return t * t
}

func EaseOutQuad(t float32) float32 {
	return t * (2 - t)
}

func EaseInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}
