package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trollterminator/Miniprojekt/internal/common"
	"github.com/trollterminator/Miniprojekt/internal/dbx"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

const selectPosts = `SELECT p.id, p.user_id, p.title, p.content, p.upvotes, p.downvotes, u.username
		FROM posts p
		JOIN users u ON u.id = p.user_id`

type SQLRepository struct {
	db dbx.DBTX
	ph dbx.Placeholder
}

func NewSQLRepository(db dbx.DBTX, ph dbx.Placeholder) *SQLRepository {
	return &SQLRepository{db: db, ph: ph}
}

// Create inserts post and stores the assigned id back into it.
func (r *SQLRepository) Create(ctx context.Context, post *models.Post) error {
	query := `INSERT INTO posts (user_id, title, content, upvotes, downvotes)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, r.ph.Rebind(query),
		post.UserID, post.Title, post.Content, post.Upvotes, post.Downvotes).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID loads one post with its author. Comments are not loaded.
func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := selectPosts + ` WHERE p.id = ?`

	post, err := scanPost(r.db.QueryRowContext(ctx, r.ph.Rebind(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

// List loads every post with its author, oldest first.
func (r *SQLRepository) List(ctx context.Context) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectPosts+` ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// AdjustVotes adds dUp and dDown to the counters in a single statement and
// returns the stored result. Counters never drop below zero.
func (r *SQLRepository) AdjustVotes(ctx context.Context, id int64, dUp, dDown int) (models.Votes, error) {
	query := `UPDATE posts
		SET upvotes = CASE WHEN upvotes + ? < 0 THEN 0 ELSE upvotes + ? END,
		    downvotes = CASE WHEN downvotes + ? < 0 THEN 0 ELSE downvotes + ? END
		WHERE id = ?
		RETURNING upvotes, downvotes`

	var v models.Votes
	err := r.db.QueryRowContext(ctx, r.ph.Rebind(query), dUp, dUp, dDown, dDown, id).
		Scan(&v.Upvotes, &v.Downvotes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Votes{}, common.ErrorNotFound
		}
		return models.Votes{}, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (*models.Post, error) {
	p := &models.Post{User: &models.User{}, Comments: []models.Comment{}}
	err := s.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.Upvotes, &p.Downvotes, &p.User.Username)
	if err != nil {
		return nil, err
	}
	p.User.ID = p.UserID
	return p, nil
}
