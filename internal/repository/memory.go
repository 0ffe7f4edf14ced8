package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-version"
	"github.com/specialistvlad/memgridgo/internal/design"
	"github.com/specialistvlad/memgridgo/internal/vlnv"
)

// Memory is an in-memory Library.
type Memory struct {
	mu   sync.RWMutex
	docs map[vlnv.VLNV]design.Document
	// versions groups registered identities by vendor:library:name.
	versions map[string][]vlnv.VLNV
}

var _ Library = (*Memory)(nil)

// NewMemory creates an empty in-memory library.
func NewMemory() *Memory {
	return &Memory{
		docs:     make(map[vlnv.VLNV]design.Document),
		versions: make(map[string][]vlnv.VLNV),
	}
}

// Add registers a document. Adding a second document with the same identity
// is an error; the first one is kept.
func (m *Memory) Add(doc design.Document) error {
	if doc == nil {
		return fmt.Errorf("cannot add nil document")
	}
	id := doc.Identity()
	if !id.IsValid() {
		return fmt.Errorf("%s document has an invalid vlnv %q", doc.Kind(), id.String())
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.docs[id]; ok {
		return fmt.Errorf("duplicate document %s: already registered as a %s", id, existing.Kind())
	}
	m.docs[id] = doc
	key := id.Unversioned()
	m.versions[key] = append(m.versions[key], id)
	return nil
}

// AddAll registers every document, collecting all failures.
func (m *Memory) AddAll(docs []design.Document) error {
	var result *multierror.Error
	for _, doc := range docs {
		if err := m.Add(doc); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Document implements Library.
func (m *Memory) Document(ctx context.Context, ref vlnv.VLNV) (design.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if ref.HasVersion() {
		doc, ok := m.docs[ref]
		return doc, ok
	}

	candidates := m.versions[ref.Unversioned()]
	if len(candidates) == 0 {
		return nil, false
	}
	return m.docs[latest(candidates)], true
}

// All returns every registered document ordered by VLNV.
func (m *Memory) All(ctx context.Context) []design.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]design.Document, 0, len(m.docs))
	for _, doc := range m.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Identity().String() < docs[j].Identity().String()
	})
	return docs
}

// Len returns the number of registered documents.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

// latest picks the highest version among candidates.
func latest(candidates []vlnv.VLNV) vlnv.VLNV {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if versionLess(best.Version, c.Version) {
			best = c
		}
	}
	return best
}

func versionLess(a, b string) bool {
	va, errA := version.NewVersion(a)
	vb, errB := version.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		return va.LessThan(vb)
	case errA != nil && errB == nil:
		return true
	case errA == nil && errB != nil:
		return false
	default:
		return a < b
	}
}
