package cli

import (
	"context"
	"errors"
	"io"
	"strings"
)

const helpText = `Available commands:
  posts                          list all posts
  post <id>                      show a post with its comments
  newpost                        create a post (prompts for title, content, user id)
  comment [postId]               comment on a post (prompts for the rest)
  upvote <postId>                upvote a post
  downvote <postId>              downvote a post
  upc <postId> <commentId>       upvote a comment
  downc <postId> <commentId>     downvote a comment
  users                          list users
  user <id>                      show a user
  adduser <name>                 register a user
  help                           show this text
  exit | quit                    leave the program
`

type command func(ctx context.Context, args []string) error

func (a *App) commands() map[string]command {
	return map[string]command{
		"posts":    a.listPosts,
		"post":     a.showPost,
		"newpost":  a.newPost,
		"comment":  a.addComment,
		"upvote":   a.votePost(true),
		"downvote": a.votePost(false),
		"upc":      a.voteComment(true),
		"downc":    a.voteComment(false),
		"users":    a.listUsers,
		"user":     a.showUser,
		"adduser":  a.addUser,
	}
}

func (a *App) prompt() string {
	mode := a.Mode()
	if mode == "" {
		return "mr> "
	}
	return "mr (" + string(mode) + ")> "
}

// runREPL reads one command per line and dispatches it. Command errors are
// printed and the loop goes on; it stops on exit/quit or end of input.
func (a *App) runREPL(ctx context.Context) {
	cmds := a.commands()

	for {
		a.printf("%s", a.prompt())

		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			a.printf("%s", helpText)
			continue
		case "exit", "quit":
			a.printf("Bye!\n")
			return
		}

		cmd, ok := cmds[name]
		if !ok {
			a.printf("Unknown command: %s\n", name)
			continue
		}
		if err := cmd(ctx, args); err != nil {
			a.printf("Error: %s\n", describe(err))
		}
	}
}
