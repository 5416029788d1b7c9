package emit

import "strconv"

// NewStem creates a name generator for the given stem. Names already in taken
// are skipped. A nil taken set means every name is free.
func NewStem(stem string, taken map[string]struct{}) *Stem {
	return &Stem{
		taken: taken,
		stem:  stem,
	}
}

// Stem hands out unique names: the stem itself first, then stem2, stem3 and so on.
type Stem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

// Next returns the next free name and marks it as taken.
func (s *Stem) Next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		s.last++

		name := s.stem
		if s.last > 1 {
			name += strconv.Itoa(s.last)
		}

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
