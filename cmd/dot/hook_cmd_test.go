package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMessage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readMessage(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestHookCommitMsg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		message  string
		wantExit int
	}{
		{"valid", "feat: add x BECAUSE I WORSHIP THE DOT\n", -1},
		{"valid with body and comments", "feat: add x\n\nbody\n\nBECAUSE I WORSHIP THE DOT\n# Please enter the commit message\n", -1},
		{"valid above scissors", "feat: x BECAUSE I WORSHIP THE DOT\n# ------------------------ >8 ------------------------\ndiff --git a/x b/x\n", -1},
		{"invalid", "feat: add x\n", 1},
		{"suffix only in comment", "feat: add x\n# BECAUSE I WORSHIP THE DOT\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeMessage(t, tt.message)
			_, err := executeCommand(testContext(t), newHookCmd(), "commit-msg", path)
			if code := exitCode(err); code != tt.wantExit {
				t.Errorf("exit code = %d (err %v), want %d", code, err, tt.wantExit)
			}
		})
	}
}

func TestHookCommitMsg_ReportsOnStderr(t *testing.T) {
	t.Parallel()

	path := writeMessage(t, "feat: add x\n")
	cmd := newHookCmd()
	var stderr bytes.Buffer
	cmd.SetContext(testContext(t))
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"commit-msg", path})

	if err := cmd.Execute(); exitCode(err) != 1 {
		t.Fatalf("exit code = %d, want 1", exitCode(err))
	}
	if !strings.Contains(stderr.String(), "✗ Invalid commit message - must end with 'BECAUSE I WORSHIP THE DOT'") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestHookCommitMsg_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := executeCommand(testContext(t), newHookCmd(), "commit-msg", filepath.Join(t.TempDir(), "nope"))
	if err == nil || exitCode(err) != -1 {
		t.Errorf("missing message file error = %v, want a plain error", err)
	}
}

func TestHookPrepareCommitMsg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		source  []string
		want    string
	}{
		{
			name:    "appends to subject",
			message: "feat: add x\n",
			want:    "feat: add x BECAUSE I WORSHIP THE DOT\n",
		},
		{
			name:    "message source",
			message: "feat: add x\n",
			source:  []string{"message"},
			want:    "feat: add x BECAUSE I WORSHIP THE DOT\n",
		},
		{
			name:    "template keeps comments",
			message: "\n# Please enter the commit message\n",
			source:  []string{"template"},
			want:    "\n\nBECAUSE I WORSHIP THE DOT\n\n# Please enter the commit message\n",
		},
		{
			name:    "already present",
			message: "feat: add x BECAUSE I WORSHIP THE DOT\n",
			want:    "feat: add x BECAUSE I WORSHIP THE DOT\n",
		},
		{
			name:    "merge left alone",
			message: "Merge branch 'x'\n",
			source:  []string{"merge"},
			want:    "Merge branch 'x'\n",
		},
		{
			name:    "amend left alone",
			message: "feat: old\n",
			source:  []string{"commit", "abc123"},
			want:    "feat: old\n",
		},
		{
			name:    "squash left alone",
			message: "squash! feat\n",
			source:  []string{"squash"},
			want:    "squash! feat\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeMessage(t, tt.message)
			args := append([]string{"prepare-commit-msg", path}, tt.source...)
			if _, err := executeCommand(testContext(t), newHookCmd(), args...); err != nil {
				t.Fatalf("prepare-commit-msg error = %v", err)
			}
			if got := readMessage(t, path); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHookPrepareThenCommitMsg(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	path := writeMessage(t, "fix: handle empty input\n\nLonger explanation.\n# comment\n")

	if _, err := executeCommand(ctx, newHookCmd(), "prepare-commit-msg", path); err != nil {
		t.Fatal(err)
	}
	if _, err := executeCommand(ctx, newHookCmd(), "commit-msg", path); err != nil {
		t.Errorf("message prepared by dot failed commit-msg: %v\n%s", err, readMessage(t, path))
	}
}
