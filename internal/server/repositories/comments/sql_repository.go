package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trollterminator/Miniprojekt/internal/common"
	"github.com/trollterminator/Miniprojekt/internal/dbx"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

const selectComments = `SELECT c.id, c.post_id, c.user_id, c.content, c.upvotes, c.downvotes, u.username
		FROM comments c
		JOIN users u ON u.id = c.user_id`

type SQLRepository struct {
	db dbx.DBTX
	ph dbx.Placeholder
}

func NewSQLRepository(db dbx.DBTX, ph dbx.Placeholder) *SQLRepository {
	return &SQLRepository{db: db, ph: ph}
}

// Create inserts comment under comment.PostID and stores the assigned id.
func (r *SQLRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `INSERT INTO comments (post_id, user_id, content, upvotes, downvotes)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, r.ph.Rebind(query),
		comment.PostID, comment.UserID, comment.Content, comment.Upvotes, comment.Downvotes).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByPost returns the comments of one post with their authors, oldest first.
func (r *SQLRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return r.query(ctx, selectComments+` WHERE c.post_id = ? ORDER BY c.id`, postID)
}

// List returns every comment grouped by post, oldest first within a post.
func (r *SQLRepository) List(ctx context.Context) ([]models.Comment, error) {
	return r.query(ctx, selectComments+` ORDER BY c.post_id, c.id`)
}

func (r *SQLRepository) query(ctx context.Context, query string, args ...any) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, r.ph.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Comment{}
	for rows.Next() {
		c := models.Comment{User: &models.User{}}
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.Upvotes, &c.Downvotes, &c.User.Username); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		c.User.ID = c.UserID
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// AdjustVotes changes the counters of the comment only when it belongs to postID.
// A comment that exists under another post is reported as not found.
func (r *SQLRepository) AdjustVotes(ctx context.Context, postID, commentID int64, dUp, dDown int) (models.Votes, error) {
	query := `UPDATE comments
		SET upvotes = CASE WHEN upvotes + ? < 0 THEN 0 ELSE upvotes + ? END,
		    downvotes = CASE WHEN downvotes + ? < 0 THEN 0 ELSE downvotes + ? END
		WHERE id = ? AND post_id = ?
		RETURNING upvotes, downvotes`

	var v models.Votes
	err := r.db.QueryRowContext(ctx, r.ph.Rebind(query), dUp, dUp, dDown, dDown, commentID, postID).
		Scan(&v.Upvotes, &v.Downvotes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Votes{}, common.ErrorNotFound
		}
		return models.Votes{}, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}
