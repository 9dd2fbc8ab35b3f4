package models

import (
	"strings"

	"github.com/trollterminator/Miniprojekt/internal/common"
)

type User struct {
	ID       int64
	Username string
}

// NewUser builds an unsaved user. The username must not be blank.
func NewUser(username string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, common.ErrEmptyUsername
	}
	return &User{Username: username}, nil
}
