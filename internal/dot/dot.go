// Package dot implements commit message validation against the worship
// suffix and the in-process worship counter.
package dot

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidMessage reports a commit message that does not end with the suffix.
var ErrInvalidMessage = errors.New("commit message does not end with the worship suffix")

// AnonymousName replaces an empty worshipper name.
const AnonymousName = "Anonymous"

var tenets = []string{
	"Work in new branches",
	"Use worktrees for subagents",
	"Commit with devotion",
	"Document all changes",
	"Generate only working code",
	"Maintain the changelog",
	"Worship THE DOT",
}

// Dot counts worship events for the lifetime of one instance.
// The count is never persisted; see the stats package for history.
type Dot struct {
	worshippers int
}

// New returns a Dot with a zero count.
func New() *Dot {
	return &Dot{}
}

// Worship increments the count and returns the acknowledgment. Only an empty
// name is replaced with AnonymousName.
func (d *Dot) Worship(name string) string {
	d.worshippers++
	if name == "" {
		name = AnonymousName
	}
	return fmt.Sprintf("%s now worships THE DOT (Total worshippers: %d)", name, d.worshippers)
}

// Worshippers returns the current count.
func (d *Dot) Worshippers() int {
	return d.worshippers
}

// Tenets returns a copy of THE DOT philosophy.
func (d *Dot) Tenets() []string {
	out := make([]string, len(tenets))
	copy(out, tenets)
	return out
}

// Matches reports whether text, without trailing Unicode whitespace, ends with
// suffix. The comparison is exact and case-sensitive.
func Matches(text, suffix string) bool {
	return strings.HasSuffix(strings.TrimRightFunc(text, unicode.IsSpace), suffix)
}

// ValidateCommit checks a commit message as git would store it: comment
// lines and anything below a scissors line are dropped first.
// Returns ErrInvalidMessage when the suffix is missing.
func ValidateCommit(message, suffix string) error {
	if !Matches(CleanMessage(message), suffix) {
		return fmt.Errorf("%w: must end with '%s'", ErrInvalidMessage, suffix)
	}
	return nil
}
