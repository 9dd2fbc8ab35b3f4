package services

import (
	"context"
	"errors"

	"github.com/trollterminator/Miniprojekt/internal/common"
	"github.com/trollterminator/Miniprojekt/internal/dbx"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

func (s *ForumService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, wrapf(err, "error listing users")
	}
	return users, nil
}

// GetUser returns the user or ErrUserNotFound.
func (s *ForumService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.lookupUser(ctx, s.db, id)
}

// CreateUser registers a username. Blank names fail with ErrEmptyUsername,
// names already in use with ErrUsernameTaken.
func (s *ForumService) CreateUser(ctx context.Context, username string) (*models.User, error) {
	user, err := models.NewUser(username)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByUsername(ctx, user.Username)
		switch {
		case err == nil:
			return common.ErrUsernameTaken
		case !errors.Is(err, common.ErrorNotFound):
			return wrapf(err, "error searching user")
		}

		user, err = repo.Create(ctx, user)
		return wrapf(err, "error creating user")
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
