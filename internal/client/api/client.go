package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/trollterminator/Miniprojekt/internal/shared"
)

const maxErrorBody = 64 << 10

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://127.0.0.1:8080/api/".
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	return &Client{baseURL: u, http: &http.Client{Timeout: timeout}}, nil
}

func (c *Client) GetPosts(ctx context.Context) ([]shared.Post, error) {
	var posts []shared.Post
	if err := c.do(ctx, http.MethodGet, "posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (*shared.Post, error) {
	var post shared.Post
	if err := c.do(ctx, http.MethodGet, "posts/"+itoa(id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost returns the id of the new post.
func (c *Client) CreatePost(ctx context.Context, title, content string, userID int64) (int64, error) {
	req := shared.CreatePostRequest{Title: title, Content: content, UserID: userID}
	return c.create(ctx, "posts", req)
}

// AddComment returns the id of the new comment.
func (c *Client) AddComment(ctx context.Context, postID int64, content string, userID int64) (int64, error) {
	req := shared.CreateCommentRequest{PostID: postID, Content: content, UserID: userID}
	return c.create(ctx, "comments", req)
}

func (c *Client) UpvotePost(ctx context.Context, postID int64) (shared.VoteResponse, error) {
	return c.vote(ctx, "upvotepost/"+itoa(postID))
}

func (c *Client) DownvotePost(ctx context.Context, postID int64) (shared.VoteResponse, error) {
	return c.vote(ctx, "downvotepost/"+itoa(postID))
}

func (c *Client) UpvoteComment(ctx context.Context, postID, commentID int64) (shared.VoteResponse, error) {
	return c.vote(ctx, "upvotecomment/"+itoa(postID)+"/"+itoa(commentID))
}

func (c *Client) DownvoteComment(ctx context.Context, postID, commentID int64) (shared.VoteResponse, error) {
	return c.vote(ctx, "downvotecomment/"+itoa(postID)+"/"+itoa(commentID))
}

func (c *Client) GetUsers(ctx context.Context) ([]shared.User, error) {
	var users []shared.User
	if err := c.do(ctx, http.MethodGet, "users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*shared.User, error) {
	var user shared.User
	if err := c.do(ctx, http.MethodGet, "users/"+itoa(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser returns the id of the new user.
func (c *Client) CreateUser(ctx context.Context, username string) (int64, error) {
	return c.create(ctx, "users", shared.CreateUserRequest{Username: username})
}

func (c *Client) create(ctx context.Context, path string, body any) (int64, error) {
	var resp shared.CreatedResponse
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) vote(ctx context.Context, path string) (shared.VoteResponse, error) {
	var resp shared.VoteResponse
	err := c.do(ctx, http.MethodPut, path, nil, &resp)
	return resp, err
}

// do sends one request to path (relative to the base URL) and decodes a 2xx
// body into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	u := c.baseURL.ResolveReference(&url.URL{Path: path})

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var m shared.MessageResponse
	if json.Unmarshal(data, &m) == nil && m.Message != "" {
		apiErr.Message = m.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
