package dbx

import (
	"strconv"
	"strings"
)

// Placeholder is the bind-parameter style of a driver.
// Repositories write their queries with '?' and rebind them once per query.
type Placeholder int

const (
	// Question keeps '?' markers (SQLite).
	Question Placeholder = iota
	// Dollar numbers the markers $1, $2, ... (PostgreSQL via pgx).
	Dollar
)

// Rebind rewrites the '?' markers of query for p. Markers inside single-quoted
// literals are left alone.
func (p Placeholder) Rebind(query string) string {
	if p != Dollar {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
