package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trollterminator/Miniprojekt/internal/common"
	"github.com/trollterminator/Miniprojekt/internal/logging"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
	"github.com/trollterminator/Miniprojekt/internal/shared"
)

// fakeService answers from the function fields; unset ones panic, which the
// recoverer turns into a 500.
type fakeService struct {
	getPosts        func(context.Context) ([]*models.Post, error)
	getPost         func(context.Context, int64) (*models.Post, error)
	createPost      func(context.Context, string, string, int64) (*models.Post, error)
	addComment      func(context.Context, int64, string, int64) (*models.Comment, error)
	upvotePost      func(context.Context, int64) (models.Votes, error)
	downvotePost    func(context.Context, int64) (models.Votes, error)
	upvoteComment   func(context.Context, int64, int64) (models.Votes, error)
	downvoteComment func(context.Context, int64, int64) (models.Votes, error)
	getUsers        func(context.Context) ([]models.User, error)
	getUser         func(context.Context, int64) (*models.User, error)
	createUser      func(context.Context, string) (*models.User, error)
}

func (f *fakeService) GetPosts(ctx context.Context) ([]*models.Post, error) { return f.getPosts(ctx) }
func (f *fakeService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	return f.getPost(ctx, id)
}
func (f *fakeService) CreatePost(ctx context.Context, t, c string, u int64) (*models.Post, error) {
	return f.createPost(ctx, t, c, u)
}
func (f *fakeService) AddComment(ctx context.Context, p int64, c string, u int64) (*models.Comment, error) {
	return f.addComment(ctx, p, c, u)
}
func (f *fakeService) UpvotePost(ctx context.Context, id int64) (models.Votes, error) {
	return f.upvotePost(ctx, id)
}
func (f *fakeService) DownvotePost(ctx context.Context, id int64) (models.Votes, error) {
	return f.downvotePost(ctx, id)
}
func (f *fakeService) UpvoteComment(ctx context.Context, p, c int64) (models.Votes, error) {
	return f.upvoteComment(ctx, p, c)
}
func (f *fakeService) DownvoteComment(ctx context.Context, p, c int64) (models.Votes, error) {
	return f.downvoteComment(ctx, p, c)
}
func (f *fakeService) GetUsers(ctx context.Context) ([]models.User, error) { return f.getUsers(ctx) }
func (f *fakeService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return f.getUser(ctx, id)
}
func (f *fakeService) CreateUser(ctx context.Context, name string) (*models.User, error) {
	return f.createUser(ctx, name)
}

func serve(t *testing.T, svc ForumService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	NewHandler(svc, logging.Nop{}).ServeHTTP(w, r)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[shared.MessageResponse](t, w).Message
}

var (
	alice = &models.User{ID: 1, Username: "Alice"}
	bob   = &models.User{ID: 2, Username: "Bob"}
)

func TestGetPosts(t *testing.T) {
	svc := &fakeService{
		getPosts: func(context.Context) ([]*models.Post, error) {
			return []*models.Post{
				{
					ID: 1, UserID: 1, Title: "T1", Content: "C1", User: alice,
					Votes: models.Votes{Upvotes: 10, Downvotes: 1},
					Comments: []models.Comment{
						{ID: 7, PostID: 1, UserID: 2, Content: "hi", User: bob, Votes: models.Votes{Upvotes: 3}},
					},
				},
				{ID: 2, UserID: 2, Title: "T2", Content: "C2", User: bob},
			}, nil
		},
	}

	w := serve(t, svc, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeJSON, w.Header().Get("Content-Type"))

	got := decodeBody[[]shared.Post](t, w)
	want := []shared.Post{
		{
			ID: 1, Title: "T1", Content: "C1", Upvotes: 10, Downvotes: 1,
			User: &shared.User{ID: 1, Username: "Alice"},
			Comments: []shared.Comment{
				{ID: 7, PostID: 1, Content: "hi", Upvotes: 3, User: &shared.User{ID: 2, Username: "Bob"}},
			},
		},
		{
			ID: 2, Title: "T2", Content: "C2",
			User:     &shared.User{ID: 2, Username: "Bob"},
			Comments: []shared.Comment{},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("posts mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, w.Body.String(), `"comments":[]`)
}

func TestGetPost(t *testing.T) {
	svc := &fakeService{
		getPost: func(_ context.Context, id int64) (*models.Post, error) {
			if id != 1 {
				return nil, common.ErrPostNotFound
			}
			return &models.Post{ID: 1, Title: "T", Content: "C", User: alice}, nil
		},
	}

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantMsg    string
	}{
		{"found", "/api/posts/1", http.StatusOK, ""},
		{"missing", "/api/posts/9", http.StatusNotFound, "Post not found"},
		{"not a number", "/api/posts/abc", http.StatusBadRequest, "invalid id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, svc, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, message(t, w))
				return
			}
			p := decodeBody[shared.Post](t, w)
			assert.Equal(t, "T", p.Title)
			assert.Equal(t, "Alice", p.User.Username)
		})
	}
}

func TestCreatePost(t *testing.T) {
	var got struct {
		title, content string
		userID         int64
	}
	svc := &fakeService{
		createPost: func(_ context.Context, title, content string, userID int64) (*models.Post, error) {
			got.title, got.content, got.userID = title, content, userID
			switch {
			case userID == 99:
				return nil, common.ErrUserNotFound
			case title == "":
				return nil, common.ErrEmptyTitle
			}
			return &models.Post{ID: 42}, nil
		},
	}

	w := serve(t, svc, http.MethodPost, "/api/posts", `{"title":"T","content":"C","userId":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, shared.CreatedResponse{Message: "Post created", ID: 42}, decodeBody[shared.CreatedResponse](t, w))
	assert.Equal(t, "T", got.title)
	assert.Equal(t, "C", got.content)
	assert.EqualValues(t, 1, got.userID)

	w = serve(t, svc, http.MethodPost, "/api/posts", `{"title":"T","content":"C","userId":99}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", message(t, w))

	w = serve(t, svc, http.MethodPost, "/api/posts", `{"title":"","content":"C","userId":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, common.ErrEmptyTitle.Error(), message(t, w))

	w = serve(t, svc, http.MethodPost, "/api/posts", `{"title":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", message(t, w))
}

func TestAddComment(t *testing.T) {
	svc := &fakeService{
		addComment: func(_ context.Context, postID int64, _ string, userID int64) (*models.Comment, error) {
			switch {
			case postID != 1:
				return nil, common.ErrPostNotFound
			case userID != 1:
				return nil, common.ErrUserNotFound
			}
			return &models.Comment{ID: 5, PostID: postID}, nil
		},
	}

	w := serve(t, svc, http.MethodPost, "/api/comments", `{"postId":1,"content":"x","userId":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, shared.CreatedResponse{Message: "Comment added", ID: 5}, decodeBody[shared.CreatedResponse](t, w))

	w = serve(t, svc, http.MethodPost, "/api/comments", `{"postId":2,"content":"x","userId":1}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", message(t, w))

	w = serve(t, svc, http.MethodPost, "/api/comments", `{"postId":1,"content":"x","userId":3}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", message(t, w))
}

func TestVotes(t *testing.T) {
	votes := models.Votes{Upvotes: 4, Downvotes: 1}
	svc := &fakeService{
		upvotePost: func(_ context.Context, id int64) (models.Votes, error) {
			if id != 1 {
				return models.Votes{}, common.ErrPostNotFound
			}
			return votes, nil
		},
		downvotePost: func(context.Context, int64) (models.Votes, error) { return votes, nil },
		upvoteComment: func(_ context.Context, postID, commentID int64) (models.Votes, error) {
			if commentID != 3 {
				return models.Votes{}, common.ErrCommentNotFound
			}
			return votes, nil
		},
		downvoteComment: func(context.Context, int64, int64) (models.Votes, error) { return votes, nil },
	}

	tests := []struct {
		target     string
		wantStatus int
		wantMsg    string
	}{
		{"/api/upvotepost/1", http.StatusOK, "Post upvoted!"},
		{"/api/upvotepost/2", http.StatusNotFound, "Post not found"},
		{"/api/downvotepost/1", http.StatusOK, "Post downvoted!"},
		{"/api/upvotecomment/1/3", http.StatusOK, "Comment upvoted!"},
		{"/api/upvotecomment/1/4", http.StatusNotFound, "Comment not found"},
		{"/api/downvotecomment/1/3", http.StatusOK, "Comment downvoted!"},
		{"/api/downvotecomment/1/x", http.StatusBadRequest, "invalid commentId"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := serve(t, svc, http.MethodPut, tt.target, "")
			require.Equal(t, tt.wantStatus, w.Code)

			resp := decodeBody[shared.VoteResponse](t, w)
			assert.Equal(t, tt.wantMsg, resp.Message)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, 4, resp.Upvotes)
				assert.Equal(t, 1, resp.Downvotes)
			}
		})
	}
}

func TestVotes_WrongMethod(t *testing.T) {
	w := serve(t, &fakeService{}, http.MethodGet, "/api/upvotepost/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestUsers(t *testing.T) {
	svc := &fakeService{
		getUsers: func(context.Context) ([]models.User, error) {
			return []models.User{*alice, *bob}, nil
		},
		getUser: func(_ context.Context, id int64) (*models.User, error) {
			if id == 1 {
				return alice, nil
			}
			return nil, common.ErrUserNotFound
		},
		createUser: func(_ context.Context, name string) (*models.User, error) {
			if name == "Alice" {
				return nil, common.ErrUsernameTaken
			}
			return &models.User{ID: 3, Username: name}, nil
		},
	}

	w := serve(t, svc, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []shared.User{{ID: 1, Username: "Alice"}, {ID: 2, Username: "Bob"}}, decodeBody[[]shared.User](t, w))

	w = serve(t, svc, http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, shared.User{ID: 1, Username: "Alice"}, decodeBody[shared.User](t, w))

	w = serve(t, svc, http.MethodGet, "/api/users/5", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", message(t, w))

	w = serve(t, svc, http.MethodPost, "/api/users", `{"username":"Dora"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, shared.CreatedResponse{Message: "User created", ID: 3}, decodeBody[shared.CreatedResponse](t, w))

	w = serve(t, svc, http.MethodPost, "/api/users", `{"username":"Alice"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, common.ErrUsernameTaken.Error(), message(t, w))
}

func TestStoreFailureIsHidden(t *testing.T) {
	svc := &fakeService{
		getPosts: func(context.Context) ([]*models.Post, error) {
			return nil, errors.New("db error: connection refused")
		},
	}

	w := serve(t, svc, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal error", message(t, w))
	assert.NotContains(t, w.Body.String(), "connection refused")
}
