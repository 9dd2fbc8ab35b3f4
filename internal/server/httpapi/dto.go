package httpapi

import (
	"github.com/trollterminator/Miniprojekt/internal/server/models"
	"github.com/trollterminator/Miniprojekt/internal/shared"
)

func userDTO(u *models.User) *shared.User {
	if u == nil {
		return nil
	}
	return &shared.User{ID: u.ID, Username: u.Username}
}

func commentDTO(c *models.Comment) shared.Comment {
	return shared.Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		Upvotes:   c.Upvotes,
		Downvotes: c.Downvotes,
		User:      userDTO(c.User),
	}
}

// postDTO always emits a comments array, never null.
func postDTO(p *models.Post) shared.Post {
	comments := make([]shared.Comment, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, commentDTO(&p.Comments[i]))
	}
	return shared.Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Upvotes:   p.Upvotes,
		Downvotes: p.Downvotes,
		User:      userDTO(p.User),
		Comments:  comments,
	}
}
