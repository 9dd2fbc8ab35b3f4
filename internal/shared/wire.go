// Package shared holds the JSON shapes exchanged between the REST API and its
// client. Field names are part of the public contract.
package shared

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	Content   string `json:"content"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	User      *User  `json:"user,omitempty"`
}

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	User      *User     `json:"user,omitempty"`
	Comments  []Comment `json:"comments"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  int64  `json:"userId"`
}

type CreateCommentRequest struct {
	PostID  int64  `json:"postId"`
	Content string `json:"content"`
	UserID  int64  `json:"userId"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
}

// MessageResponse is the body of every error and of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse acknowledges a create and carries the new id.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// VoteResponse acknowledges a vote with the counters after it was applied.
type VoteResponse struct {
	Message   string `json:"message"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}
