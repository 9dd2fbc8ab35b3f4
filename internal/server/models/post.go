package models

import (
	"strings"

	"github.com/trollterminator/Miniprojekt/internal/common"
)

type Post struct {
	ID      int64
	UserID  int64
	Title   string
	Content string
	Votes

	User     *User
	Comments []Comment
}

// NewPost builds an unsaved post owned by user. Title and content must not be blank.
func NewPost(user *User, title, content string, votes Votes) (*Post, error) {
	if user == nil {
		return nil, common.ErrMissingUser
	}
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrEmptyContent
	}
	return &Post{
		UserID:   user.ID,
		User:     user,
		Title:    title,
		Content:  content,
		Votes:    votes,
		Comments: []Comment{},
	}, nil
}
