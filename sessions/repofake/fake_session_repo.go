package fakesessionrepo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/sessions"
)

var _ sessions.Repo = (*FakeSessionRepo)(nil)

type FakeSessionRepo struct {
	sessions map[string]*sessions.Session
	lock     sync.RWMutex
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{
		sessions: make(map[string]*sessions.Session),
	}
}

func (sr *FakeSessionRepo) List(ownerID string, filter sessions.Filter) ([]*sessions.Session, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	result := make([]*sessions.Session, 0)
	for _, s := range sr.sessions {
		if s.OwnerID != ownerID {
			continue
		}
		if filter.Start != nil && s.StartTime.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && s.StartTime.After(*filter.End) {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.ClientID != "" && s.ClientID != filter.ClientID {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func (sr *FakeSessionRepo) Get(id string) (*sessions.Session, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	s, ok := sr.sessions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (sr *FakeSessionRepo) Create(session *sessions.Session) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.Status == "" {
		session.Status = sessions.StatusScheduled
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	copied := *session
	sr.sessions[session.ID] = &copied
	return nil
}

func (sr *FakeSessionRepo) Update(id, ownerID string, update sessions.Update) (*sessions.Session, error) {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	s, ok := sr.sessions[id]
	if !ok || s.OwnerID != ownerID {
		return nil, apperrors.ErrNotFound
	}

	if update.ClientID != nil {
		s.ClientID = *update.ClientID
	}
	if update.StartTime != nil {
		s.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		s.EndTime = *update.EndTime
	}
	if update.Status != nil {
		s.Status = *update.Status
	}
	if update.Notes != nil {
		s.Notes = *update.Notes
	}
	s.UpdatedAt = time.Now()

	copied := *s
	return &copied, nil
}

func (sr *FakeSessionRepo) Delete(id, ownerID string) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	s, ok := sr.sessions[id]
	if !ok || s.OwnerID != ownerID {
		return apperrors.ErrNotFound
	}
	delete(sr.sessions, s.ID)
	return nil
}
