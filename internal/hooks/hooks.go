package hooks

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// Name identifies a managed git hook.
type Name string

const (
	CommitMsg        Name = "commit-msg"
	PrepareCommitMsg Name = "prepare-commit-msg"
)

// All lists the managed hooks in installation order.
var All = []Name{CommitMsg, PrepareCommitMsg}

// marker identifies scripts written by dot.
const marker = "# installed by dot"

// BackupSuffix is appended to foreign hooks that get replaced.
const BackupSuffix = ".backup"

// shellQuote escapes a string for safe use in shell commands.
// e.g., "it's" becomes 'it'\''s'
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// Script returns the hook script for name invoking binary.
// DOT_BIN in the hook environment overrides the binary.
func Script(name Name, binary string) string {
	return "#!/bin/sh\n" +
		marker + "\n" +
		"DOT=" + shellQuote(binary) + "\n" +
		"if [ -n \"$DOT_BIN\" ]; then DOT=\"$DOT_BIN\"; fi\n" +
		"exec \"$DOT\" hook " + string(name) + " \"$@\"\n"
}

// Action describes what Install did for one hook.
type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"  // an older dot script was rewritten
	ActionReplaced Action = "replaced" // a foreign hook was overwritten
)

// Result reports the outcome for one hook.
type Result struct {
	Name   Name
	Path   string
	Action Action
	Backup string // path of the backed up foreign hook, if any
}

// Options controls Install.
type Options struct {
	Binary string // dot executable the scripts call
	Backup bool   // keep foreign hooks as <name>.backup
}

// Install writes all managed hooks into dir, creating it if needed.
func Install(dir string, opts Options) ([]Result, error) {
	if opts.Binary == "" {
		opts.Binary = "dot"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create hooks dir: %w", err)
	}

	results := make([]Result, 0, len(All))
	for _, name := range All {
		res, err := install(dir, name, opts)
		if err != nil {
			return results, fmt.Errorf("install %s hook: %w", name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func install(dir string, name Name, opts Options) (Result, error) {
	path := filepath.Join(dir, string(name))
	res := Result{Name: name, Path: path, Action: ActionCreated}

	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return res, err
	case isManaged(existing):
		res.Action = ActionUpdated
	default:
		res.Action = ActionReplaced
		if opts.Backup {
			res.Backup = path + BackupSuffix
			if err := renameio.WriteFile(res.Backup, existing, 0o755); err != nil {
				return res, fmt.Errorf("backup: %w", err)
			}
		}
	}

	if err := renameio.WriteFile(path, []byte(Script(name, opts.Binary)), 0o755); err != nil {
		return res, err
	}
	return res, nil
}

func isManaged(script []byte) bool {
	return bytes.Contains(script, []byte(marker))
}

// State is the installation state of a hook.
type State string

const (
	StateInstalled State = "installed" // dot script present
	StateForeign   State = "foreign"   // some other hook present
	StateMissing   State = "missing"
)

// HookStatus pairs a hook with its state.
type HookStatus struct {
	Name  Name   `json:"name"`
	Path  string `json:"path"`
	State State  `json:"state"`
}

// Status reports the state of every managed hook in dir.
func Status(dir string) []HookStatus {
	out := make([]HookStatus, 0, len(All))
	for _, name := range All {
		path := filepath.Join(dir, string(name))
		st := HookStatus{Name: name, Path: path, State: StateMissing}
		if data, err := os.ReadFile(path); err == nil {
			st.State = StateForeign
			if isManaged(data) {
				st.State = StateInstalled
			}
		}
		out = append(out, st)
	}
	return out
}

// Removal describes what Uninstall did for one hook.
type Removal struct {
	Name     Name
	Path     string
	Removed  bool // a dot script was deleted
	Restored bool // <name>.backup was moved back into place
	Skipped  bool // a foreign hook was left alone
}

// Uninstall removes the dot scripts from dir and restores backed up hooks.
// Foreign hooks and their backups are left untouched.
func Uninstall(dir string) ([]Removal, error) {
	out := make([]Removal, 0, len(All))
	for _, name := range All {
		rm, err := uninstall(dir, name)
		if err != nil {
			return out, fmt.Errorf("uninstall %s hook: %w", name, err)
		}
		out = append(out, rm)
	}
	return out, nil
}

func uninstall(dir string, name Name) (Removal, error) {
	path := filepath.Join(dir, string(name))
	rm := Removal{Name: name, Path: path}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return rm, nil
	case err != nil:
		return rm, err
	case !isManaged(data):
		rm.Skipped = true
		return rm, nil
	}

	backup := path + BackupSuffix
	if _, err := os.Stat(backup); err == nil {
		if err := os.Rename(backup, path); err != nil {
			return rm, fmt.Errorf("restore backup: %w", err)
		}
		rm.Removed, rm.Restored = true, true
		return rm, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return rm, err
	}

	if err := os.Remove(path); err != nil {
		return rm, err
	}
	rm.Removed = true
	return rm, nil
}
