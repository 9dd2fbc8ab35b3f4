package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/trollterminator/Miniprojekt/internal/shared"
)

func author(u *shared.User) string {
	if u == nil {
		return "?"
	}
	return u.Username
}

func printPostLine(w io.Writer, p *shared.Post) {
	fmt.Fprintf(w, "[%d] %s  by %s  (+%d/-%d, %d comments)\n",
		p.ID, p.Title, author(p.User), p.Upvotes, p.Downvotes, len(p.Comments))
}

func printPost(w io.Writer, p *shared.Post) {
	fmt.Fprintf(w, "[%d] %s\n", p.ID, p.Title)
	fmt.Fprintf(w, "by %s  (+%d/-%d)\n\n", author(p.User), p.Upvotes, p.Downvotes)
	fmt.Fprintln(w, p.Content)

	if len(p.Comments) == 0 {
		return
	}
	fmt.Fprintf(w, "\nComments:\n")
	for _, c := range p.Comments {
		body := strings.ReplaceAll(c.Content, "\n", "\n      ")
		fmt.Fprintf(w, "  [%d] %s: %s  (+%d/-%d)\n", c.ID, author(c.User), body, c.Upvotes, c.Downvotes)
	}
}
