package comments

import (
	"context"

	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	List(ctx context.Context) ([]models.Comment, error)
	Count(ctx context.Context) (int64, error)
	AdjustVotes(ctx context.Context, postID, commentID int64, dUp, dDown int) (models.Votes, error)
}
