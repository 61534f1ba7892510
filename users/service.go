// Package users manages the registration directory stored under the
// "all-users" key. Per product decision there is no password verification:
// credentials are accepted unchecked and never stored.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/AmoolyaSuneja/EduStream/models"
	"github.com/AmoolyaSuneja/EduStream/storage"
)

const directoryKey = "all-users"

var (
	ErrMissingFields = errors.New("users: name, email and password are required")
	ErrEmailTaken    = errors.New("users: email already registered")
	ErrNotFound      = errors.New("users: user not found")
)

type Service struct {
	store storage.Store

	mu sync.Mutex
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Register adds a new user to the directory. The password must be present
// but is otherwise ignored.
func (s *Service) Register(ctx context.Context, name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	directory := s.directoryLocked(ctx)
	if _, ok := findByEmail(directory, email); ok {
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Avatar: initial(name),
	}
	directory = append(directory, user)
	if err := s.writeDirectory(ctx, directory); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login resolves a user by email. An unknown email registers a fresh user
// on the fly, named after the email prefix, mirroring how signup-free
// login has always behaved here.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	directory := s.directoryLocked(ctx)
	if user, ok := findByEmail(directory, email); ok {
		return user, nil
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	user := models.User{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Avatar: initial(email),
	}
	directory = append(directory, user)
	if err := s.writeDirectory(ctx, directory); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.directoryLocked(ctx) {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Update applies a partial update to the stored user; empty fields keep
// their current values.
func (s *Service) Update(ctx context.Context, id string, updates models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	directory := s.directoryLocked(ctx)
	for i, user := range directory {
		if user.ID != id {
			continue
		}
		if updates.Name != "" {
			user.Name = updates.Name
		}
		if updates.Email != "" {
			user.Email = updates.Email
		}
		if updates.Avatar != "" {
			user.Avatar = updates.Avatar
		}
		directory[i] = user
		if err := s.writeDirectory(ctx, directory); err != nil {
			return models.User{}, err
		}
		return user, nil
	}
	return models.User{}, ErrNotFound
}

// directoryLocked reads the user list with the same fail-soft contract as
// the progress collections: missing or malformed data means empty.
func (s *Service) directoryLocked(ctx context.Context) []models.User {
	raw, err := s.store.Get(ctx, directoryKey)
	if err != nil {
		return []models.User{}
	}
	var directory []models.User
	if err := json.Unmarshal([]byte(raw), &directory); err != nil {
		return []models.User{}
	}
	return directory
}

func (s *Service) writeDirectory(ctx context.Context, directory []models.User) error {
	raw, err := json.Marshal(directory)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, directoryKey, string(raw))
}

func findByEmail(directory []models.User, email string) (models.User, bool) {
	for _, user := range directory {
		if strings.EqualFold(user.Email, email) {
			return user, true
		}
	}
	return models.User{}, false
}

func initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}
