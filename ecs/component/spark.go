package component

import "image/color"

type Spark struct {
	Body
	Life  float64
	Color color.RGBA
}

// Bubble is background decoration. It never collides.
type Bubble struct {
	X, Y float64
	R    float64
	V    float64
}
