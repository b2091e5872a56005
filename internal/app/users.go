package app

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrUserExists  = errors.New("user already exists")
	ErrInvalidUser = errors.New("account and password are required")
)

type User struct {
	Account  string
	Password string
	Email    string
}

// Users is an in-memory user repository.
type Users struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewUsers(seed ...User) *Users {
	u := &Users{users: map[string]User{}}
	for _, s := range seed {
		u.users[s.Account] = s
	}
	return u
}

func (u *Users) Add(user User) error {
	if user.Account == "" || user.Password == "" {
		return ErrInvalidUser
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.users[user.Account]; ok {
		return errors.Wrap(ErrUserExists, user.Account)
	}
	u.users[user.Account] = user
	return nil
}

func (u *Users) Find(account string) (User, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	user, ok := u.users[account]
	return user, ok
}

func (u *Users) Accounts() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	accounts := make([]string, 0, len(u.users))
	for a := range u.users {
		accounts = append(accounts, a)
	}
	sort.Strings(accounts)
	return accounts
}
