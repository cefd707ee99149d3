package repository

import (
	"errors"
	"fmt"

	"smart-parking/internal/data/entity"

	"go.uber.org/zap"
)

var ErrDuplicateUsername = errors.New("username already exists")

// UserDirectory holds registered users and enforces username uniqueness.
type UserDirectory struct {
	users      []*entity.User
	byUsername map[string]*entity.User
	log        *zap.Logger
}

func NewUserDirectory(log *zap.Logger) *UserDirectory {
	return &UserDirectory{
		byUsername: make(map[string]*entity.User),
		log:        log.With(zap.String("repository", "user_directory")),
	}
}

func (d *UserDirectory) Add(user entity.User) error {
	if _, exists := d.byUsername[user.Username]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateUsername, user.Username)
	}
	u := user
	d.users = append(d.users, &u)
	d.byUsername[u.Username] = &u

	d.log.Info("User added",
		zap.String("user_id", u.ID),
		zap.String("username", u.Username),
		zap.String("role", string(u.Role)),
	)
	return nil
}

func (d *UserDirectory) FindByUsername(username string) (entity.User, bool) {
	user, ok := d.byUsername[username]
	if !ok {
		return entity.User{}, false
	}
	return *user, true
}

func (d *UserDirectory) FindByID(id string) (entity.User, bool) {
	for _, user := range d.users {
		if user.ID == id {
			return *user, true
		}
	}
	return entity.User{}, false
}

func (d *UserDirectory) All() []entity.User {
	out := make([]entity.User, len(d.users))
	for i, user := range d.users {
		out[i] = *user
	}
	return out
}

func (d *UserDirectory) Count() int {
	return len(d.users)
}

// Restore re-seeds the directory from a persisted snapshot.
func (d *UserDirectory) Restore(users []entity.User) error {
	for _, user := range users {
		if err := d.Add(user); err != nil {
			return err
		}
	}
	return nil
}
