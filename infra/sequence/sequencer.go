package sequence

// Sequencer hands out strictly increasing ids starting after its seed.
// It is single-writer: the owner serialises calls.
type Sequencer struct {
	last uint64
}

// New creates a sequencer whose first Next returns start+1.
// A fresh library starts at 0.
func New(start uint64) *Sequencer {
	return &Sequencer{last: start}
}

// Next advances the sequencer and returns the new id.
func (s *Sequencer) Next() uint64 {
	s.last++
	return s.last
}

// Current returns the last issued id, or the seed if none was issued.
func (s *Sequencer) Current() uint64 {
	return s.last
}
