package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/dot"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "validate [message...]",
		Short:   "Check that a commit message worships THE DOT",
		GroupID: GroupCore,
		Long: `Check that a commit message ends with the worship suffix.

The message is taken from the arguments (joined with spaces), from --file,
or from stdin when "-" is given or input is piped. Messages read from a file
or stdin are cleaned the way git cleans them: comment lines and everything
below the scissors line are ignored.

Exits with status 1 when the message is invalid.`,
		Example: `  dot validate "fix: typo BECAUSE I WORSHIP THE DOT"
  dot validate --file .git/COMMIT_EDITMSG
  git log -1 --format=%B | dot validate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			message, fromFile, err := validateInput(cmd, file, args)
			if err != nil {
				return err
			}

			suffix := resolveSuffix(ctx).Value
			if fromFile {
				err = dot.ValidateCommit(message, suffix)
			} else if !dot.Matches(message, suffix) {
				err = fmt.Errorf("%w: must end with '%s'", dot.ErrInvalidMessage, suffix)
			}

			if errors.Is(err, dot.ErrInvalidMessage) {
				out.Println(styles.Fail(fmt.Sprintf("Invalid commit message - must end with '%s'", suffix)))
				return &exitError{code: 1}
			}
			out.Println(styles.OK("Valid commit message - properly worships THE DOT"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the commit message from a file")
	cmd.MarkFlagFilename("file")

	return cmd
}

// validateInput picks the message source. fromFile reports whether the
// message came from a file or stdin and should be cleaned like git does.
func validateInput(cmd *cobra.Command, file string, args []string) (message string, fromFile bool, err error) {
	switch {
	case file != "" && len(args) > 0:
		return "", false, fmt.Errorf("--file cannot be combined with a message argument")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", false, fmt.Errorf("failed to read commit message: %w", err)
		}
		return string(data), true, nil
	case len(args) == 1 && args[0] == "-":
		data, ok, err := readStdinIfPiped(cmd.InOrStdin())
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, errNoMessage
		}
		return data, true, nil
	case len(args) > 0:
		return strings.Join(args, " "), false, nil
	}

	data, ok, err := readStdinIfPiped(cmd.InOrStdin())
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, errNoMessage
	}
	return data, true, nil
}

var errNoMessage = errors.New("provide a commit message to validate")
