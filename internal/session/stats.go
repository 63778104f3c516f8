package session

import "github.com/jask/cribtrain/internal/score"

// Stats is the session accumulator. It is owned by the driver and passed in
// explicitly; nothing in it persists across runs.
type Stats struct {
	Rounds  int
	Correct int
	Tallies score.Breakdown // cumulative category points seen this session
}

// Record tallies one answered round and reports whether the guess was right.
func (s *Stats) Record(guess int, b score.Breakdown) bool {
	s.Rounds++
	s.Tallies.Pairs += b.Pairs
	s.Tallies.Fifteens += b.Fifteens
	s.Tallies.Runs += b.Runs
	s.Tallies.Flushes += b.Flushes
	s.Tallies.Nobs += b.Nobs
	if guess == b.Total() {
		s.Correct++
		return true
	}
	return false
}

// Accuracy is the fraction of correct answers, 0 when nothing is recorded.
func (s *Stats) Accuracy() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Rounds)
}
