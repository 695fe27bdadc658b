package accordion

// Visibility is the collapsed or expanded state of a section.
type Visibility int

const (
	// Expanded sections show their rows. It is the zero value and the default
	// for sections that were never toggled.
	Expanded Visibility = iota
	// Collapsed sections keep their header but contribute no rows.
	Collapsed
)

// Toggle returns the opposite visibility.
func (v Visibility) Toggle() Visibility {
	if v == Collapsed {
		return Expanded
	}
	return Collapsed
}

func (v Visibility) String() string {
	switch v {
	case Collapsed:
		return "collapsed"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// visibilityStore maps keys to a visibility and answers def for keys it has
// never seen. Entries are created on first set.
type visibilityStore[K comparable] struct {
	def    Visibility
	values map[K]Visibility
}

func (s *visibilityStore[K]) get(key K) Visibility {
	if v, ok := s.values[key]; ok {
		return v
	}
	return s.def
}

func (s *visibilityStore[K]) set(key K, v Visibility) {
	if s.values == nil {
		s.values = make(map[K]Visibility)
	}
	s.values[key] = v
}

func (s *visibilityStore[K]) remove(key K) {
	delete(s.values, key)
}

func (s *visibilityStore[K]) keys() []K {
	out := make([]K, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	return out
}

func (s *visibilityStore[K]) keysWithValue(v Visibility) []K {
	var out []K
	for k, value := range s.values {
		if value == v {
			out = append(out, k)
		}
	}
	return out
}
