package services

import (
	"context"

	"github.com/trollterminator/Miniprojekt/internal/dbx"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

// GetPosts returns every post with its author and comments; each comment
// carries its own author.
func (s *ForumService) GetPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.repomanager.Posts(s.db).List(ctx)
	if err != nil {
		return nil, wrapf(err, "error listing posts")
	}

	comments, err := s.repomanager.Comments(s.db).List(ctx)
	if err != nil {
		return nil, wrapf(err, "error listing comments")
	}

	byPost := make(map[int64][]models.Comment, len(posts))
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	for _, p := range posts {
		if cs, ok := byPost[p.ID]; ok {
			p.Comments = cs
		}
	}

	return posts, nil
}

// GetPost returns one post loaded like GetPosts, or ErrPostNotFound.
func (s *ForumService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.lookupPost(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.repomanager.Comments(s.db).ListByPost(ctx, id)
	if err != nil {
		return nil, wrapf(err, "error listing comments of post %d", id)
	}
	post.Comments = comments

	return post, nil
}

// CreatePost stores a new post owned by userID with zeroed counters.
// Fails with ErrUserNotFound, ErrEmptyTitle or ErrEmptyContent.
func (s *ForumService) CreatePost(ctx context.Context, title, content string, userID int64) (*models.Post, error) {
	var post *models.Post

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.lookupUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		post, err = models.NewPost(user, title, content, models.Votes{})
		if err != nil {
			return err
		}

		return wrapf(s.repomanager.Posts(tx).Create(ctx, post), "error creating post")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "post created", "post_id", post.ID, "user_id", userID)
	return post, nil
}

// AddComment appends a comment by userID to postID.
// Fails with ErrPostNotFound, ErrUserNotFound or ErrEmptyContent, in that order.
func (s *ForumService) AddComment(ctx context.Context, postID int64, content string, userID int64) (*models.Comment, error) {
	var comment *models.Comment

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		post, err := s.lookupPost(ctx, tx, postID)
		if err != nil {
			return err
		}

		user, err := s.lookupUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		comment, err = models.NewComment(user, content, models.Votes{})
		if err != nil {
			return err
		}
		comment.PostID = post.ID

		return wrapf(s.repomanager.Comments(tx).Create(ctx, comment), "error creating comment")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "comment added", "post_id", postID, "comment_id", comment.ID, "user_id", userID)
	return comment, nil
}
