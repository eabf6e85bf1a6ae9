package render

// Renderer renders the result of a use case
type Renderer[T any] interface {
	Render(result T) error
}
