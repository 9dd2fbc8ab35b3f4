package posts

import (
	"context"

	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Count(ctx context.Context) (int64, error)
	AdjustVotes(ctx context.Context, id int64, dUp, dDown int) (models.Votes, error)
}
