package models

// Votes holds the two counters carried by posts and comments.
type Votes struct {
	Upvotes   int
	Downvotes int
}

// VoteMode selects how a downvote is recorded.
type VoteMode string

const (
	// VoteModeNet lowers the upvote counter on a downvote; Downvotes is left untouched.
	VoteModeNet VoteMode = "net"
	// VoteModeTally raises the separate downvote counter.
	VoteModeTally VoteMode = "tally"
)

// Valid reports whether m is a known mode.
func (m VoteMode) Valid() bool {
	return m == VoteModeNet || m == VoteModeTally
}

// Delta returns the counter adjustments for a single vote.
func (m VoteMode) Delta(up bool) (dUp, dDown int) {
	switch {
	case up:
		return 1, 0
	case m == VoteModeTally:
		return 0, 1
	default:
		return -1, 0
	}
}
