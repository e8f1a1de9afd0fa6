package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/dot/internal/config"
)

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readStdinIfPiped returns the content of r unless it is a terminal.
// Returns ok=false when nothing was piped.
func readStdinIfPiped(r io.Reader) (string, bool, error) {
	if isTerminal(r) {
		return "", false, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", false, nil
	}
	return string(data), true, nil
}

// resolveSuffix returns the worship suffix for the current invocation.
func resolveSuffix(ctx context.Context) config.ResolvedSuffix {
	return config.ResolverFromContext(ctx).Resolve(ctx)
}
