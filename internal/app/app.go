// Package app holds the sample controllers served by cmd/httpserver.
package app

import (
	"github.com/nhdewitt/jwp-dispatch/internal/dispatch"
	"github.com/nhdewitt/jwp-dispatch/internal/session"
	"github.com/pkg/errors"
)

// Controllers returns the constructors registered at startup.
func Controllers(users *Users, sessions *session.Store) []dispatch.Constructor {
	return []dispatch.Constructor{
		func() (dispatch.Controller, error) {
			if users == nil {
				return nil, errors.New("user controller needs a user repository")
			}
			return &UserController{users: users}, nil
		},
		func() (dispatch.Controller, error) {
			if users == nil || sessions == nil {
				return nil, errors.New("login controller needs users and sessions")
			}
			return &LoginController{users: users, sessions: sessions}, nil
		},
	}
}
