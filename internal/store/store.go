package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/iliyamo/club-manager/internal/model"
	"github.com/iliyamo/club-manager/internal/utils"
)

// Store owns the backing file.  Every operation reloads the document
// from disk and every mutation rewrites it wholesale, so there is no
// in-memory cache to go stale between requests.  The mutex serialises
// writers: Update holds it across load-validate-save, which closes the
// window where two concurrent bookings could both read the same
// capacity snapshot and oversell an event.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open returns a Store for the given file path.  If the file does not
// exist it is created and seeded with one default user per role and
// default settings, matching the bootstrap state of a fresh install.
// bcryptCost is only used when hashing the seed passwords.
func Open(path string, bcryptCost int) (*Store, error) {
	s := &Store{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.seed(bcryptCost); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return s, nil
}

// seed writes the initial document: three users (owner/admin/user),
// empty collections and default settings.
func (s *Store) seed(bcryptCost int) error {
	doc := &model.Document{
		Users:         make([]model.User, 0, 3),
		Events:        []model.Event{},
		Bookings:      []model.Booking{},
		Notifications: []model.Notification{},
		Settings: model.Settings{
			ClubName:        "Elite Club",
			ClubDescription: "Premium events and experiences",
			MaintenanceMode: false,
		},
	}
	seedUsers := []struct {
		username, password, role, name string
	}{
		{"owner", "owner123", model.RoleOwner, "Club Owner"},
		{"admin", "admin123", model.RoleAdmin, "Club Admin"},
		{"user", "user123", model.RoleUser, "John Doe"},
	}
	for _, u := range seedUsers {
		hash, err := utils.HashPassword(u.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStorage, err)
		}
		doc.Users = append(doc.Users, model.User{
			ID:       uuid.NewString(),
			Username: u.username,
			Password: hash,
			Role:     u.role,
			Name:     u.name,
		})
	}
	return s.save(doc)
}

// Load reads and decodes the whole document.  An unreadable or corrupt
// file surfaces as ErrStorage; callers do not attempt recovery.
func (s *Store) Load() (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save encodes and rewrites the whole document.
func (s *Store) Save(doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update runs fn inside the load-mutate-save cycle while holding the
// store lock.  If fn returns an error the document is not rewritten.
// All mutating handlers go through here.
func (s *Store) Update(fn func(doc *model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) load() (*model.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &doc, nil
}

func (s *Store) save(doc *model.Document) error {
	// Indented output keeps the file diffable and hand-inspectable,
	// matching the format a fresh install writes.
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
