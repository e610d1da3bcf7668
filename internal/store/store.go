package store

import (
	"math"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/abhisek/academy/internal/catalog"
	"github.com/abhisek/academy/internal/logger"
)

// Progress summarises how much of the catalog has been completed.
type Progress struct {
	Completed int
	Total     int
	Percent   int // round(Completed/Total*100), 0 for an empty catalog
}

// Fraction returns Completed/Total in [0, 1], or 0 for an empty catalog.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Observer is notified synchronously after every change to the completed set.
type Observer func(Progress)

// Store holds the static catalog and the session's completed-lesson set.
// Nothing is persisted; the set lives as long as the Store.
type Store struct {
	catalog *catalog.Catalog
	log     *logger.Logger

	mu        sync.Mutex
	completed map[string]struct{}
	observers map[int]Observer
	nextObs   int
}

// New creates a Store over cat with an empty completed set.
func New(cat *catalog.Catalog, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		catalog:   cat,
		log:       log,
		completed: make(map[string]struct{}),
		observers: make(map[int]Observer),
	}
}

// Catalog returns the underlying catalog.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Categories returns the full ordered category list.
func (s *Store) Categories() []catalog.Category {
	return s.catalog.Categories()
}

// LessonByID returns the lesson with the given ID. The second return value
// is false when no such lesson exists.
func (s *Store) LessonByID(id string) (catalog.Lesson, bool) {
	return s.catalog.Lesson(id)
}

// MarkComplete adds id to the completed set. Marking an already completed
// lesson is a no-op. Unknown IDs are ignored so the set never holds orphans;
// the return value reports whether id names a lesson.
func (s *Store) MarkComplete(id string) bool {
	if _, ok := s.catalog.Lesson(id); !ok {
		s.log.Warn("mark complete: unknown lesson", "lesson_id", id)
		return false
	}

	s.mu.Lock()
	if _, done := s.completed[id]; done {
		s.mu.Unlock()
		return true
	}
	s.completed[id] = struct{}{}
	p := s.progressLocked()
	observers := s.observersLocked()
	s.mu.Unlock()

	s.log.Debug("lesson completed", "lesson_id", id, "completed", p.Completed, "total", p.Total)
	notify(observers, p)
	return true
}

// MarkIncomplete removes id from the completed set. It reports whether the
// lesson was completed before the call.
func (s *Store) MarkIncomplete(id string) bool {
	s.mu.Lock()
	if _, done := s.completed[id]; !done {
		s.mu.Unlock()
		return false
	}
	delete(s.completed, id)
	p := s.progressLocked()
	observers := s.observersLocked()
	s.mu.Unlock()

	s.log.Debug("lesson marked incomplete", "lesson_id", id, "completed", p.Completed, "total", p.Total)
	notify(observers, p)
	return true
}

// IsCompleted reports whether id is in the completed set.
func (s *Store) IsCompleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.completed[id]
	return ok
}

// CompletedIDs returns the completed lesson IDs in sorted order.
func (s *Store) CompletedIDs() []string {
	s.mu.Lock()
	ids := lo.Keys(s.completed)
	s.mu.Unlock()
	slices.Sort(ids)
	return ids
}

// Progress returns the completed count, the catalog size and the rounded
// completion percentage.
func (s *Store) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

// Reset clears the completed set.
func (s *Store) Reset() {
	s.mu.Lock()
	if len(s.completed) == 0 {
		s.mu.Unlock()
		return
	}
	s.completed = make(map[string]struct{})
	p := s.progressLocked()
	observers := s.observersLocked()
	s.mu.Unlock()

	s.log.Debug("progress reset")
	notify(observers, p)
}

// Subscribe registers fn to be called after each change to the completed
// set. The returned func removes the registration. A nil fn is not
// registered.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Store) progressLocked() Progress {
	return computeProgress(len(s.completed), s.catalog.Total())
}

// observersLocked returns the observers in registration order so
// notification order is deterministic.
func (s *Store) observersLocked() []Observer {
	ids := lo.Keys(s.observers)
	slices.Sort(ids)
	out := make([]Observer, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.observers[id])
	}
	return out
}

// notify runs outside the lock so observers may call back into the store.
func notify(observers []Observer, p Progress) {
	for _, fn := range observers {
		fn(p)
	}
}

func computeProgress(completed, total int) Progress {
	p := Progress{Completed: completed, Total: total}
	if total > 0 {
		p.Percent = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return p
}
