package user

import (
	"context"
	"sync"
	"time"

	domain "user-records-api/internal/domain/user"
)

// Repository is the in-memory user store. A single coarse lock guards
// the whole collection; records are copied on the way in and out so
// callers never alias store memory.
type Repository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*User
	order  []int64
}

var _ domain.Repository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{
		nextID: 1,
		users:  make(map[int64]*User),
	}
}

func (r *Repository) CreateUser(_ context.Context, req domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fromModel(r.insert(req)), nil
}

// insert assigns the next id and stores the record. Caller holds the lock.
func (r *Repository) insert(req domain.User) *User {
	m := toModel(req)
	m.ID = r.nextID
	r.nextID++

	r.users[m.ID] = m
	r.order = append(r.order, m.ID)

	return m
}

func (r *Repository) FetchUserByID(_ context.Context, id domain.ID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.users[int64(id)]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}

	return fromModel(m), nil
}

func (r *Repository) FetchUsers(_ context.Context) (domain.Users, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	us := make(domain.Users, 0, len(r.order))
	for _, id := range r.order {
		us = append(us, fromModel(r.users[id]))
	}

	return us, nil
}

func (r *Repository) FetchUsersByBirthDateRange(_ context.Context, from, to time.Time) (domain.Users, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var us domain.Users
	for _, id := range r.order {
		m := r.users[id]
		if m.BirthDate.IsZero() {
			continue
		}
		if m.BirthDate.Before(from) || m.BirthDate.After(to) {
			continue
		}
		us = append(us, fromModel(m))
	}

	return us, nil
}

func (r *Repository) ReplaceUser(_ context.Context, id domain.ID, req domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.users[int64(id)]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}

	m.Email = req.Email
	m.FirstName = req.FirstName
	m.LastName = req.LastName
	m.BirthDate = req.BirthDate
	m.Address = req.Address
	m.PhoneNumber = req.PhoneNumber

	return fromModel(m), nil
}

func (r *Repository) PatchUser(_ context.Context, id domain.ID, p domain.Patch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.users[int64(id)]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}

	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.BirthDate != nil {
		m.BirthDate = *p.BirthDate
	}
	if p.Address != nil {
		m.Address = *p.Address
	}
	if p.PhoneNumber != nil {
		m.PhoneNumber = *p.PhoneNumber
	}

	return fromModel(m), nil
}

func (r *Repository) DeleteUser(_ context.Context, id domain.ID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.users[int64(id)]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}

	delete(r.users, int64(id))
	for idx, oid := range r.order {
		if oid == int64(id) {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}

	return fromModel(m), nil
}
