// Package httpapi exposes the forum over a JSON REST API under /api.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/trollterminator/Miniprojekt/internal/logging"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
)

const shutdownTimeout = 5 * time.Second

// ForumService is the subset of services.ForumService the handlers call.
type ForumService interface {
	GetPosts(ctx context.Context) ([]*models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, title, content string, userID int64) (*models.Post, error)
	AddComment(ctx context.Context, postID int64, content string, userID int64) (*models.Comment, error)

	UpvotePost(ctx context.Context, postID int64) (models.Votes, error)
	DownvotePost(ctx context.Context, postID int64) (models.Votes, error)
	UpvoteComment(ctx context.Context, postID, commentID int64) (models.Votes, error)
	DownvoteComment(ctx context.Context, postID, commentID int64) (models.Votes, error)

	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, username string) (*models.User, error)
}

type HTTPServer struct {
	address string
	handler http.Handler
	logger  logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, svc ForumService) *HTTPServer {
	logger := l.With("module", "http_server")
	return &HTTPServer{
		address: a,
		logger:  logger,
		handler: NewHandler(svc, logger),
	}
}

// Handler returns the routed API wrapped in its middleware chain.
func (s *HTTPServer) Handler() http.Handler { return s.handler }

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-stopped
	return nil
}
