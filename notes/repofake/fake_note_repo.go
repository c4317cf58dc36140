package fakenoterepo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/therapistsfriend/practice-server/notes"
)

var _ notes.Repo = (*FakeNoteRepo)(nil)

type FakeNoteRepo struct {
	notes map[string]*notes.Note
	lock  sync.RWMutex
}

func NewFakeNoteRepo() *FakeNoteRepo {
	return &FakeNoteRepo{
		notes: make(map[string]*notes.Note),
	}
}

func (nr *FakeNoteRepo) Create(note *notes.Note) error {
	nr.lock.Lock()
	defer nr.lock.Unlock()

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	copied := *note
	nr.notes[note.ID] = &copied
	return nil
}

func (nr *FakeNoteRepo) ListBySession(sessionID string) ([]*notes.Note, error) {
	nr.lock.RLock()
	defer nr.lock.RUnlock()

	result := make([]*notes.Note, 0)
	for _, n := range nr.notes {
		if n.SessionID != sessionID {
			continue
		}
		copied := *n
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (nr *FakeNoteRepo) CountBySession(sessionID string) (int, error) {
	nr.lock.RLock()
	defer nr.lock.RUnlock()

	count := 0
	for _, n := range nr.notes {
		if n.SessionID == sessionID {
			count++
		}
	}
	return count, nil
}
