package store

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Aniket-49001/Railway-Concession/models"
)

// fileUser mirrors models.User for the JSON file. The model hides its
// password hash from API responses with `json:"-"`, so the file store
// needs its own record type to persist it.
type fileUser struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`
	CollegeID    uint      `json:"collegeId"`
	CreatedAt    time.Time `json:"created_at"`
}

// FileUserStore keeps users in a JSON file so registration and login keep
// working when the database is down. Writes go through a temp file and
// rename so a crash never leaves a half-written store.
type FileUserStore struct {
	mu   sync.Mutex
	path string
}

func NewFileUserStore(path string) *FileUserStore {
	return &FileUserStore{path: path}
}

func (s *FileUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return users[i].toModel(), nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *FileUserStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	u.Email = strings.ToLower(u.Email)
	var maxID uint
	for i := range users {
		if strings.EqualFold(users[i].Email, u.Email) {
			return ErrDuplicateEmail
		}
		if users[i].ID > maxID {
			maxID = users[i].ID
		}
	}

	u.ID = maxID + 1
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt

	record := fileUser{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         u.Role,
		CollegeID:    u.CollegeID,
		CreatedAt:    u.CreatedAt,
	}
	return s.save(append(users, record))
}

func (f *fileUser) toModel() *models.User {
	return &models.User{
		ID:           f.ID,
		Email:        f.Email,
		PasswordHash: f.PasswordHash,
		FullName:     f.FullName,
		Role:         f.Role,
		CollegeID:    f.CollegeID,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.CreatedAt,
	}
}

func (s *FileUserStore) load() ([]fileUser, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var users []fileUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *FileUserStore) save(users []fileUser) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
