package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/trollterminator/Miniprojekt/internal/client/api"
	"github.com/trollterminator/Miniprojekt/internal/client/config"
	"github.com/trollterminator/Miniprojekt/internal/shared"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const onlineCheckInterval = 5 * time.Second

// forumAPI is the slice of api.Client the commands use.
type forumAPI interface {
	GetPosts(ctx context.Context) ([]shared.Post, error)
	GetPost(ctx context.Context, id int64) (*shared.Post, error)
	CreatePost(ctx context.Context, title, content string, userID int64) (int64, error)
	AddComment(ctx context.Context, postID int64, content string, userID int64) (int64, error)
	UpvotePost(ctx context.Context, postID int64) (shared.VoteResponse, error)
	DownvotePost(ctx context.Context, postID int64) (shared.VoteResponse, error)
	UpvoteComment(ctx context.Context, postID, commentID int64) (shared.VoteResponse, error)
	DownvoteComment(ctx context.Context, postID, commentID int64) (shared.VoteResponse, error)
	GetUsers(ctx context.Context) ([]shared.User, error)
	GetUser(ctx context.Context, id int64) (*shared.User, error)
	CreateUser(ctx context.Context, username string) (int64, error)
}

type App struct {
	config *config.Config
	api    forumAPI
	reader *bufio.Reader
	out    io.Writer
	mode   atomic.Value
}

func NewApp(c *config.Config) (*App, error) {
	client, err := api.New(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return newApp(c, client, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, client forumAPI, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: client, reader: bufio.NewReader(in), out: out}
}

// Run starts the online watcher and the REPL; it returns when the user exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, onlineCheckInterval)

	a.printf("Welcome to Mini-Reddit CLI (type 'help' for commands)\n")
	a.runREPL(ctx)
}

// Mode reports the last observed server reachability; empty before the
// first probe.
func (a *App) Mode() Mode {
	m, _ := a.mode.Load().(Mode)
	return m
}

func (a *App) setMode(mode Mode) {
	a.mode.Store(mode)
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := a.api.GetUsers(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
