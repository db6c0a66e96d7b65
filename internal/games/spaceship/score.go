package spaceship

// ScoreAccumulator sums score increments. The total never decreases.
type ScoreAccumulator struct {
	total int
}

// Add adds a positive increment; zero and negative values are ignored.
func (s *ScoreAccumulator) Add(n int) {
	if n > 0 {
		s.total += n
	}
}

// Total returns the accumulated score.
func (s *ScoreAccumulator) Total() int {
	return s.total
}
