package steplog

import (
	"sort"
	"sync"
	"time"
)

// timerSet maps timer names to start instants. It is shared between
// Loggers returned by Share, so it carries its own lock.
type timerSet struct {
	mu     sync.Mutex
	starts map[string]time.Time
}

func newTimerSet() *timerSet {
	return &timerSet{starts: map[string]time.Time{}}
}

func (s *timerSet) put(name string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts[name] = at
}

// take removes name and returns its start instant.
func (s *timerSet) take(name string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.starts[name]
	if ok {
		delete(s.starts, name)
	}
	return at, ok
}

func (s *timerSet) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.starts))
	for k := range s.starts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
