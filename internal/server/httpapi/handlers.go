package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/trollterminator/Miniprojekt/internal/logging"
	"github.com/trollterminator/Miniprojekt/internal/server/models"
	"github.com/trollterminator/Miniprojekt/internal/shared"
)

const maxBodyBytes = 1 << 20

type handlers struct {
	svc    ForumService
	logger logging.Logger
}

// NewHandler builds the /api routes and wraps them in the middleware chain.
func NewHandler(svc ForumService, l logging.Logger) http.Handler {
	h := &handlers{svc: svc, logger: l}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/posts", h.getPosts)
	mux.HandleFunc("GET /api/posts/{id}", h.getPost)
	mux.HandleFunc("POST /api/posts", h.createPost)
	mux.HandleFunc("POST /api/comments", h.addComment)

	mux.HandleFunc("PUT /api/upvotepost/{postId}", h.votePost(true))
	mux.HandleFunc("PUT /api/downvotepost/{postId}", h.votePost(false))
	mux.HandleFunc("PUT /api/upvotecomment/{postId}/{commentId}", h.voteComment(true))
	mux.HandleFunc("PUT /api/downvotecomment/{postId}/{commentId}", h.voteComment(false))

	mux.HandleFunc("GET /api/users", h.getUsers)
	mux.HandleFunc("GET /api/users/{id}", h.getUser)
	mux.HandleFunc("POST /api/users", h.createUser)

	return chain(mux,
		requestID,
		accessLog(l),
		recoverer(l),
		cors,
	)
}

func (h *handlers) getPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.GetPosts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]shared.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, postDTO(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) getPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, postDTO(post))
}

func (h *handlers) createPost(w http.ResponseWriter, r *http.Request) {
	var req shared.CreatePostRequest
	if !decode(w, r, &req) {
		return
	}

	post, err := h.svc.CreatePost(r.Context(), req.Title, req.Content, req.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, shared.CreatedResponse{Message: "Post created", ID: post.ID})
}

func (h *handlers) addComment(w http.ResponseWriter, r *http.Request) {
	var req shared.CreateCommentRequest
	if !decode(w, r, &req) {
		return
	}

	comment, err := h.svc.AddComment(r.Context(), req.PostID, req.Content, req.UserID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, shared.CreatedResponse{Message: "Comment added", ID: comment.ID})
}

func (h *handlers) votePost(up bool) http.HandlerFunc {
	vote, msg := h.svc.DownvotePost, "Post downvoted!"
	if up {
		vote, msg = h.svc.UpvotePost, "Post upvoted!"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := pathID(w, r, "postId")
		if !ok {
			return
		}

		votes, err := vote(r.Context(), postID)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, voteDTO(msg, votes))
	}
}

func (h *handlers) voteComment(up bool) http.HandlerFunc {
	vote, msg := h.svc.DownvoteComment, "Comment downvoted!"
	if up {
		vote, msg = h.svc.UpvoteComment, "Comment upvoted!"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := pathID(w, r, "postId")
		if !ok {
			return
		}
		commentID, ok := pathID(w, r, "commentId")
		if !ok {
			return
		}

		votes, err := vote(r.Context(), postID, commentID)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, voteDTO(msg, votes))
	}
}

func (h *handlers) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.GetUsers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]shared.User, 0, len(users))
	for i := range users {
		out = append(out, *userDTO(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userDTO(user))
}

func (h *handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var req shared.CreateUserRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.Username)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, shared.CreatedResponse{Message: "User created", ID: user.ID})
}

// pathID parses a numeric path segment, answering 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func voteDTO(msg string, v models.Votes) shared.VoteResponse {
	return shared.VoteResponse{Message: msg, Upvotes: v.Upvotes, Downvotes: v.Downvotes}
}
