package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/trollterminator/Miniprojekt/internal/client/api"
)

type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

// describe renders an error for the user; API errors show the server message.
func describe(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "server unavailable"
	}
	return err.Error()
}

func parseIDs(args []string, usage string, n int) ([]int64, error) {
	if len(args) != n {
		return nil, usageError(usage)
	}
	ids := make([]int64, n)
	for i, s := range args {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", s)
		}
		ids[i] = id
	}
	return ids, nil
}

func (a *App) listPosts(ctx context.Context, _ []string) error {
	posts, err := a.api.GetPosts(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		a.printf("No posts yet.\n")
		return nil
	}
	for i := range posts {
		printPostLine(a.out, &posts[i])
	}
	return nil
}

func (a *App) showPost(ctx context.Context, args []string) error {
	ids, err := parseIDs(args, "post <id>", 1)
	if err != nil {
		return err
	}
	post, err := a.api.GetPost(ctx, ids[0])
	if err != nil {
		return err
	}
	printPost(a.out, post)
	return nil
}

func (a *App) newPost(ctx context.Context, _ []string) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	userID, err := a.askID("User id")
	if err != nil {
		return err
	}

	id, err := a.api.CreatePost(ctx, title, content, userID)
	if err != nil {
		return err
	}
	a.printf("Post created (id %d)\n", id)
	return nil
}

func (a *App) addComment(ctx context.Context, args []string) error {
	var postID int64
	switch len(args) {
	case 0:
		id, err := a.askID("Post id")
		if err != nil {
			return err
		}
		postID = id
	default:
		ids, err := parseIDs(args, "comment [postId]", 1)
		if err != nil {
			return err
		}
		postID = ids[0]
	}

	content, err := GetMultiline(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	userID, err := a.askID("User id")
	if err != nil {
		return err
	}

	id, err := a.api.AddComment(ctx, postID, content, userID)
	if err != nil {
		return err
	}
	a.printf("Comment added (id %d)\n", id)
	return nil
}

func (a *App) votePost(up bool) command {
	usage, vote := "downvote <postId>", a.api.DownvotePost
	if up {
		usage, vote = "upvote <postId>", a.api.UpvotePost
	}
	return func(ctx context.Context, args []string) error {
		ids, err := parseIDs(args, usage, 1)
		if err != nil {
			return err
		}
		v, err := vote(ctx, ids[0])
		if err != nil {
			return err
		}
		a.printf("%s (%d up, %d down)\n", v.Message, v.Upvotes, v.Downvotes)
		return nil
	}
}

func (a *App) voteComment(up bool) command {
	usage, vote := "downc <postId> <commentId>", a.api.DownvoteComment
	if up {
		usage, vote = "upc <postId> <commentId>", a.api.UpvoteComment
	}
	return func(ctx context.Context, args []string) error {
		ids, err := parseIDs(args, usage, 2)
		if err != nil {
			return err
		}
		v, err := vote(ctx, ids[0], ids[1])
		if err != nil {
			return err
		}
		a.printf("%s (%d up, %d down)\n", v.Message, v.Upvotes, v.Downvotes)
		return nil
	}
}

func (a *App) listUsers(ctx context.Context, _ []string) error {
	users, err := a.api.GetUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		a.printf("%4d  %s\n", u.ID, u.Username)
	}
	return nil
}

func (a *App) showUser(ctx context.Context, args []string) error {
	ids, err := parseIDs(args, "user <id>", 1)
	if err != nil {
		return err
	}
	u, err := a.api.GetUser(ctx, ids[0])
	if err != nil {
		return err
	}
	a.printf("%d  %s\n", u.ID, u.Username)
	return nil
}

func (a *App) addUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("adduser <name>")
	}
	id, err := a.api.CreateUser(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("User created (id %d)\n", id)
	return nil
}

func (a *App) askID(prompt string) (int64, error) {
	s, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
