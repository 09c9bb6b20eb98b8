package store

import (
	"sync"

	"github.com/samber/mo"
	"github.com/toyz/usermvc/internal/models"
)

// UserStore is an ordered in-memory collection of users. Insertion order is
// preserved and entries are matched by id with a linear scan; when ids repeat
// the first entry wins. It is safe for concurrent use.
type UserStore struct {
	mu    sync.RWMutex
	users []*models.User
}

// NewUserStore creates a store seeded with users, in order
func NewUserStore(seed ...models.User) *UserStore {
	s := &UserStore{users: make([]*models.User, 0, len(seed))}
	for _, u := range seed {
		u := u
		s.users = append(s.users, &u)
	}
	return s
}

// DemoUsers is the seed used by the demo server
func DemoUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Doe", Email: "jane@example.com"},
	}
}

// All returns a snapshot of every user in insertion order
func (s *UserStore) All() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	for i, u := range s.users {
		users[i] = *u
	}
	return users
}

// Len returns the number of users
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Find returns the first user with id
func (s *UserStore) Find(id int) mo.Option[models.User] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return mo.Some(*s.users[i])
	}
	return mo.None[models.User]()
}

// Add appends user to the end of the collection
func (s *UserStore) Add(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, &user)
}

// Update overwrites name and email of the user with id, keeping its id and
// position. It reports whether a user was found.
func (s *UserStore) Update(id int, name, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.users[i].Name = name
	s.users[i].Email = email
	return true
}

// Remove deletes the user with id and reports whether one was found
func (s *UserStore) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	last := len(s.users) - 1
	copy(s.users[i:], s.users[i+1:])
	s.users[last] = nil
	s.users = s.users[:last]
	return true
}

// indexOf must be called with the lock held
func (s *UserStore) indexOf(id int) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
