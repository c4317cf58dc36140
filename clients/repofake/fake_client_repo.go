package fakeclientrepo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/therapistsfriend/practice-server/clients"
	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
)

var _ clients.Repo = (*FakeClientRepo)(nil)

type FakeClientRepo struct {
	clients map[string]*clients.Client
	lock    sync.RWMutex
}

func NewFakeClientRepo() *FakeClientRepo {
	return &FakeClientRepo{
		clients: make(map[string]*clients.Client),
	}
}

func (cr *FakeClientRepo) List(ownerID string) ([]*clients.Client, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	result := make([]*clients.Client, 0)
	for _, c := range cr.clients {
		if c.OwnerID != ownerID {
			continue
		}
		copied := *c
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastName < result[j].LastName
	})
	return result, nil
}

func (cr *FakeClientRepo) Get(id string) (*clients.Client, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	c, ok := cr.clients[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (cr *FakeClientRepo) Create(client *clients.Client) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if client.Status == "" {
		client.Status = clients.StatusActive
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	copied := *client
	cr.clients[client.ID] = &copied
	return nil
}

func (cr *FakeClientRepo) Update(id, ownerID string, update clients.Update) (*clients.Client, error) {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	c, ok := cr.clients[id]
	if !ok || c.OwnerID != ownerID {
		return nil, apperrors.ErrNotFound
	}

	if update.FirstName != nil {
		c.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		c.LastName = *update.LastName
	}
	if update.Email != nil {
		c.Email = *update.Email
	}
	if update.Phone != nil {
		c.Phone = *update.Phone
	}
	if update.Status != nil {
		c.Status = *update.Status
	}
	c.UpdatedAt = time.Now()

	copied := *c
	return &copied, nil
}

func (cr *FakeClientRepo) Delete(id, ownerID string) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	c, ok := cr.clients[id]
	if !ok || c.OwnerID != ownerID {
		return apperrors.ErrNotFound
	}
	delete(cr.clients, c.ID)
	return nil
}
