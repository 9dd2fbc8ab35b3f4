package services

import (
	"context"

	"github.com/trollterminator/Miniprojekt/internal/common"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

// Each vote is one atomic UPDATE, so concurrent votes on a row are not lost.

func (s *ForumService) UpvotePost(ctx context.Context, postID int64) (models.Votes, error) {
	return s.votePost(ctx, postID, true)
}

func (s *ForumService) DownvotePost(ctx context.Context, postID int64) (models.Votes, error) {
	return s.votePost(ctx, postID, false)
}

func (s *ForumService) UpvoteComment(ctx context.Context, postID, commentID int64) (models.Votes, error) {
	return s.voteComment(ctx, postID, commentID, true)
}

func (s *ForumService) DownvoteComment(ctx context.Context, postID, commentID int64) (models.Votes, error) {
	return s.voteComment(ctx, postID, commentID, false)
}

func (s *ForumService) votePost(ctx context.Context, postID int64, up bool) (models.Votes, error) {
	dUp, dDown := s.voteMode.Delta(up)

	votes, err := s.repomanager.Posts(s.db).AdjustVotes(ctx, postID, dUp, dDown)
	if err != nil {
		return models.Votes{}, notFound(err, common.ErrPostNotFound)
	}
	return votes, nil
}

func (s *ForumService) voteComment(ctx context.Context, postID, commentID int64, up bool) (models.Votes, error) {
	if _, err := s.lookupPost(ctx, s.db, postID); err != nil {
		return models.Votes{}, err
	}

	dUp, dDown := s.voteMode.Delta(up)

	votes, err := s.repomanager.Comments(s.db).AdjustVotes(ctx, postID, commentID, dUp, dDown)
	if err != nil {
		return models.Votes{}, notFound(err, common.ErrCommentNotFound)
	}
	return votes, nil
}
