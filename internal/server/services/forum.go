// Package services contains the server-side business logic. ForumService is
// the only path between the API surface and the store: it resolves entity
// relationships, validates input and applies votes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trollterminator/Miniprojekt/internal/common"
	"github.com/trollterminator/Miniprojekt/internal/dbx"
	"github.com/trollterminator/Miniprojekt/internal/logging"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
	"github.com/trollterminator/Miniprojekt/internal/server/repositories/repomanager"
)

// ForumService holds no per-request state; it is safe for concurrent use and
// every call draws its own connection or transaction from db.
type ForumService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	voteMode    models.VoteMode
	logger      logging.Logger
}

func NewForumService(db *sql.DB, m repomanager.RepositoryManager, mode models.VoteMode, l logging.Logger) *ForumService {
	if !mode.Valid() {
		mode = models.VoteModeNet
	}
	return &ForumService{
		db:          db,
		repomanager: m,
		voteMode:    mode,
		logger:      l.With("module", "forum_service"),
	}
}

// VoteMode reports how downvotes are recorded.
func (s *ForumService) VoteMode() models.VoteMode { return s.voteMode }

// notFound replaces a repository miss with the specific failure.
func notFound(err error, specific error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return specific
	}
	return err
}

func (s *ForumService) lookupUser(ctx context.Context, db dbx.DBTX, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(db).GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, common.ErrUserNotFound)
	}
	return user, nil
}

func (s *ForumService) lookupPost(ctx context.Context, db dbx.DBTX, id int64) (*models.Post, error) {
	post, err := s.repomanager.Posts(db).GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, common.ErrPostNotFound)
	}
	return post, nil
}

func wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
