package pipeline

import "sync"

// RunStats accumulates batch counters. Counters are append-only during a
// run; the mutex only matters when workers > 1.
type RunStats struct {
	mu      sync.Mutex
	Total   int
	Success int
	Failed  int
	Skipped int
}

func (s *RunStats) addSuccess() {
	s.mu.Lock()
	s.Success++
	s.mu.Unlock()
}

func (s *RunStats) addFailed() {
	s.mu.Lock()
	s.Failed++
	s.mu.Unlock()
}

func (s *RunStats) addSkipped() {
	s.mu.Lock()
	s.Skipped++
	s.mu.Unlock()
}

// Counts returns a plain snapshot of the counters.
func (s *RunStats) Counts() (total, success, failed, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Total, s.Success, s.Failed, s.Skipped
}
