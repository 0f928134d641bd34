package component

type Boss struct {
	Body
	T float64
	// Aura pulses between 0.6 and 1 for the renderer.
	Aura float64
}
