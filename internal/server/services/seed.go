package services

import (
	"context"
	"errors"

	"github.com/trollterminator/Miniprojekt/internal/common"
	"github.com/trollterminator/Miniprojekt/internal/dbx"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
	"github.com/trollterminator/Miniprojekt/internal/server/repositories/users"
)

type seedPost struct {
	author  string
	title   string
	content string
	votes   models.Votes
}

type seedComment struct {
	content string
	votes   models.Votes
}

var (
	seedUsernames = []string{"Alice", "Bob", "Charlie"}

	seedPosts = []seedPost{
		{
			author:  "Alice",
			title:   "Welcome to Mini-Reddit!",
			content: "This is the first post on the site.",
			votes:   models.Votes{Upvotes: 10, Downvotes: 1},
		},
		{
			author:  "Bob",
			title:   "What do you think of Go?",
			content: "I have started learning Go and would like to hear about your experiences.",
			votes:   models.Votes{Upvotes: 7},
		},
	}

	// seedComments[i] goes to the i-th stored post.
	seedComments = []seedComment{
		{content: "Exciting project!", votes: models.Votes{Upvotes: 3}},
		{content: "I love Go!", votes: models.Votes{Upvotes: 5}},
	}

	seedCommenter = "Charlie"
)

// SeedData fills empty tables with the demo data set. Users, posts and
// comments are checked independently, so a partially seeded store is
// completed and a fully populated one is left untouched.
func (s *ForumService) SeedData(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.seedUsers(ctx, tx); err != nil {
			return wrapf(err, "error seeding users")
		}
		if err := s.seedPosts(ctx, tx); err != nil {
			return wrapf(err, "error seeding posts")
		}
		return wrapf(s.seedComments(ctx, tx), "error seeding comments")
	})
}

func (s *ForumService) seedUsers(ctx context.Context, tx dbx.DBTX) error {
	repo := s.repomanager.Users(tx)

	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	for _, name := range seedUsernames {
		user, err := models.NewUser(name)
		if err != nil {
			return err
		}
		if _, err := repo.Create(ctx, user); err != nil {
			return err
		}
	}

	s.logger.Info(ctx, "seeded users", "count", len(seedUsernames))
	return nil
}

func (s *ForumService) seedPosts(ctx context.Context, tx dbx.DBTX) error {
	repo := s.repomanager.Posts(tx)

	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	for _, sp := range seedPosts {
		author, err := seedAuthor(ctx, s.repomanager.Users(tx), sp.author)
		if err != nil {
			return err
		}
		post, err := models.NewPost(author, sp.title, sp.content, sp.votes)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, post); err != nil {
			return err
		}
	}

	s.logger.Info(ctx, "seeded posts", "count", len(seedPosts))
	return nil
}

func (s *ForumService) seedComments(ctx context.Context, tx dbx.DBTX) error {
	repo := s.repomanager.Comments(tx)

	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	posts, err := s.repomanager.Posts(tx).List(ctx)
	if err != nil {
		return err
	}

	author, err := seedAuthor(ctx, s.repomanager.Users(tx), seedCommenter)
	if err != nil {
		return err
	}

	added := 0
	for i, sc := range seedComments {
		if i >= len(posts) {
			break
		}
		comment, err := models.NewComment(author, sc.content, sc.votes)
		if err != nil {
			return err
		}
		comment.PostID = posts[i].ID
		if err := repo.Create(ctx, comment); err != nil {
			return err
		}
		added++
	}

	s.logger.Info(ctx, "seeded comments", "count", added)
	return nil
}

// seedAuthor resolves a seed username, falling back to the oldest user when
// the store was populated with other accounts.
func seedAuthor(ctx context.Context, repo users.Repository, username string) (*models.User, error) {
	user, err := repo.GetByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	all, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, common.ErrUserNotFound
	}
	return &all[0], nil
}
