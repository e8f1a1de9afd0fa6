// Package cmd runs external commands (git) with context support.
//
// Stderr of a failed command becomes the error message, so callers can wrap
// it directly:
//
//	out, err := cmd.OutputContext(ctx, "", "git", "rev-parse", "--git-dir")
//	if err != nil {
//	    return fmt.Errorf("not a git repository: %w", err)
//	}
//
// Every invocation is traced through the context logger when verbose.
// A cancelled context is reported as ctx.Err() rather than the kill signal.
package cmd
