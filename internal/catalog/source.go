package catalog

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source produces catalogs from a data file, or from the builtin catalog when
// Path is empty. It is safe for concurrent use.
type Source struct {
	Path   string
	Filter *Filter

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source for path with the given filter.
func NewSource(path string, filter *Filter) *Source {
	seed := uint64(time.Now().UnixNano())
	return &Source{
		Path:   path,
		Filter: filter,
		rng:    rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

// Fetch loads the catalog and applies the filter. When sample is set, a
// random sample is taken first (see Catalog.Sample).
func (s *Source) Fetch(sample bool) (Catalog, error) {
	cat := Builtin()
	if s.Path != "" {
		loaded, err := Load(s.Path)
		if err != nil {
			return Catalog{}, err
		}
		cat = loaded
	}
	if sample {
		s.mu.Lock()
		if s.rng == nil {
			s.rng = rand.New(rand.NewPCG(1, 2))
		}
		cat = cat.Sample(s.rng)
		s.mu.Unlock()
	}
	return s.Filter.Apply(cat)
}
