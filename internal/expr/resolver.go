package expr

// Resolver turns expression text into an integer. Resolution is total: any
// failure, including empty text, yields 0.
type Resolver interface {
	Resolve(text string) int64
}
