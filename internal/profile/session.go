// Package profile holds the signed-in user and their profile photo.
package profile

import (
	"errors"
	"strings"
)

// ErrEmptyUsername is returned when signing in with a blank name.
var ErrEmptyUsername = errors.New("profile: username is required")

// Session tracks who is signed in. The zero value is signed out.
type Session struct {
	username string
}

// SignIn stores the trimmed username.
func (s *Session) SignIn(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	s.username = username
	return nil
}

// SignOut forgets the current user.
func (s *Session) SignOut() {
	s.username = ""
}

// Username returns the signed-in name, or "" when signed out.
func (s *Session) Username() string {
	return s.username
}

// SignedIn reports whether a user is signed in.
func (s *Session) SignedIn() bool {
	return s.username != ""
}
