package models

import (
	"strings"

	"github.com/trollterminator/Miniprojekt/internal/common"
)

type Comment struct {
	ID      int64
	PostID  int64
	UserID  int64
	Content string
	Votes

	User *User
}

// NewComment builds an unsaved comment. PostID is left for the caller to set.
func NewComment(user *User, content string, votes Votes) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrEmptyContent
	}
	if user == nil {
		return nil, common.ErrMissingUser
	}
	return &Comment{
		UserID:  user.ID,
		User:    user,
		Content: content,
		Votes:   votes,
	}, nil
}
