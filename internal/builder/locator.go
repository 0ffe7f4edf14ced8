package builder

import (
	"github.com/specialistvlad/memgridgo/internal/expr"
	"github.com/specialistvlad/memgridgo/internal/repository"
)

const (
	// DefaultMaxDepth bounds how many hierarchy levels a build descends.
	DefaultMaxDepth = 32
	// DefaultMaxRegisterElements bounds how many items one register array
	// expands to.
	DefaultMaxRegisterElements = 1 << 16
)

// Locator builds connectivity graphs from designs. A Locator holds no
// per-build state and may run several builds concurrently as long as its
// Library and Resolver are safe for concurrent use.
type Locator struct {
	lib                 repository.Library
	res                 expr.Resolver
	maxDepth            int
	maxRegisterElements int64
}

// Option configures a Locator.
type Option func(*Locator)

// WithMaxDepth caps the number of nested levels below the top design.
// Zero disables descent entirely; negative values are ignored.
func WithMaxDepth(depth int) Option {
	return func(l *Locator) {
		if depth < 0 {
			return
		}
		l.maxDepth = depth
	}
}

// WithMaxRegisterElements caps the number of elements a register array
// expands to. Larger dimensions are truncated and reported. Values below one
// are ignored.
func WithMaxRegisterElements(n int64) Option {
	return func(l *Locator) {
		if n < 1 {
			return
		}
		l.maxRegisterElements = n
	}
}

// New creates a Locator that fetches documents from lib and resolves
// expressions with res.
func New(lib repository.Library, res expr.Resolver, opts ...Option) *Locator {
	l := &Locator{
		lib:                 lib,
		res:                 res,
		maxDepth:            DefaultMaxDepth,
		maxRegisterElements: DefaultMaxRegisterElements,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
