package app

import (
	"html"
	"strings"

	"github.com/nhdewitt/jwp-dispatch/internal/dispatch"
	"github.com/nhdewitt/jwp-dispatch/internal/frontend"
	"github.com/nhdewitt/jwp-dispatch/internal/request"
	"github.com/nhdewitt/jwp-dispatch/internal/session"
	"github.com/pkg/errors"
)

const sessionUser = "user"

// UserController lists and registers users.
type UserController struct {
	users *Users
}

func (c *UserController) Routes() []dispatch.Route {
	return []dispatch.Route{
		{
			Method:  request.MethodGet,
			Path:    "/users",
			Name:    "users.list",
			Handler: c.list,
		},
		{
			Method:  request.MethodPost,
			Path:    "/users",
			Name:    "users.create",
			Params:  []dispatch.Param{dispatch.BindField("name")},
			Handler: c.create,
		},
		{
			Method: request.MethodPost,
			Path:   "/register",
			Name:   "users.register",
			Params: []dispatch.Param{
				dispatch.BindField("account"),
				dispatch.BindField("password"),
				dispatch.BindField("email"),
			},
			Handler: c.register,
		},
	}
}

func (c *UserController) list(args ...any) (any, error) {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, a := range c.users.Accounts() {
		b.WriteString("<li>" + html.EscapeString(a) + "</li>")
	}
	b.WriteString("</ul>")
	return b.String(), nil
}

// create registers a user by name only and echoes the name back.
func (c *UserController) create(args ...any) (any, error) {
	name := args[0].(string)
	if err := c.users.Add(User{Account: name, Password: name}); err != nil {
		return nil, err
	}
	return name, nil
}

func (c *UserController) register(args ...any) (any, error) {
	user := User{
		Account:  args[0].(string),
		Password: args[1].(string),
		Email:    args[2].(string),
	}
	if err := c.users.Add(user); err != nil {
		return nil, err
	}
	return frontend.RedirectPrefix + "/index.html", nil
}

// LoginController keeps the logged-in account in the caller's session.
type LoginController struct {
	users    *Users
	sessions *session.Store
}

func (c *LoginController) Routes() []dispatch.Route {
	return []dispatch.Route{
		{
			Method: request.MethodPost,
			Path:   "/login",
			Name:   "login",
			Params: []dispatch.Param{
				dispatch.BindField("account"),
				dispatch.BindField("password"),
				dispatch.BindRequest(),
			},
			Handler: c.login,
		},
		{
			Method:  request.MethodGet,
			Path:    "/logout",
			Name:    "logout",
			Params:  []dispatch.Param{dispatch.BindRequest()},
			Handler: c.logout,
		},
		{
			Method:  request.MethodGet,
			Path:    "/me",
			Name:    "me",
			Params:  []dispatch.Param{dispatch.BindRequest()},
			Handler: c.me,
		},
	}
}

func (c *LoginController) login(args ...any) (any, error) {
	account, password := args[0].(string), args[1].(string)
	req := args[2].(*request.Request)

	user, ok := c.users.Find(account)
	if !ok || user.Password != password {
		return frontend.RedirectPrefix + "/401.html", nil
	}

	s, ok := c.sessions.Get(req.SessionID())
	if !ok {
		return nil, errors.New("no session for request")
	}
	s.Set(sessionUser, user.Account)
	return frontend.RedirectPrefix + "/index.html", nil
}

func (c *LoginController) logout(args ...any) (any, error) {
	req := args[0].(*request.Request)
	if s, ok := c.sessions.Get(req.SessionID()); ok {
		s.Invalidate()
	}
	return frontend.RedirectPrefix + "/index.html", nil
}

func (c *LoginController) me(args ...any) (any, error) {
	req := args[0].(*request.Request)
	if s, ok := c.sessions.Get(req.SessionID()); ok {
		if account, ok := s.Get(sessionUser); ok {
			return account, nil
		}
	}
	return "anonymous", nil
}
