package exam

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory RecordStore. Used by tests and by the preview
// command, where durability doesn't matter.
type MemStore struct {
	mu        sync.Mutex
	questions map[string][]Question // paper ID → ordered questions
	answers   map[string]Answer     // answer ID → answer
	papers    map[string]Paper      // paper ID → paper

	// FailWrites makes every write return ErrWriteFailed. Tests use it to
	// exercise persistence-fault paths.
	FailWrites bool
}

// ErrWriteFailed is returned by a MemStore with FailWrites set.
var ErrWriteFailed = errMem("write failed")

type errMem string

func (e errMem) Error() string { return string(e) }

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		questions: make(map[string][]Question),
		answers:   make(map[string]Answer),
		papers:    make(map[string]Paper),
	}
}

func (m *MemStore) Questions(_ context.Context, paperID string) ([]Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	qs := make([]Question, len(m.questions[paperID]))
	copy(qs, m.questions[paperID])
	return qs, nil
}

func (m *MemStore) SaveQuestions(_ context.Context, paperID string, qs []Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrWriteFailed
	}
	cp := make([]Question, len(qs))
	copy(cp, qs)
	m.questions[paperID] = cp
	return nil
}

func (m *MemStore) Answers(_ context.Context, paperID string) ([]Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Answer
	for _, a := range m.answers {
		if a.PaperID == paperID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out, nil
}

func (m *MemStore) SaveAnswer(_ context.Context, a Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrWriteFailed
	}
	m.answers[a.ID] = a
	return nil
}

func (m *MemStore) Papers(_ context.Context) ([]Paper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Paper
	for _, p := range m.papers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStore) SavePaper(_ context.Context, p Paper) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrWriteFailed
	}
	m.papers[p.ID] = p
	return nil
}

// AnswerCount reports how many answers are stored for a paper.
func (m *MemStore) AnswerCount(paperID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, a := range m.answers {
		if a.PaperID == paperID {
			n++
		}
	}
	return n
}

// Paper returns a stored paper by ID.
func (m *MemStore) Paper(paperID string) (Paper, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.papers[paperID]
	return p, ok
}
