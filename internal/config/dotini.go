package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// ErrExists is returned when a config file would be overwritten without force.
var ErrExists = errors.New("config file already exists")

// DotINI renders .dot.ini content for the given suffix.
func DotINI(suffix string) string {
	return "[" + Section + "]\n" + Key + " = " + suffix + "\n"
}

// WriteDotINI writes a .dot.ini into dir. An existing file is kept unless
// force is set. Returns the written path.
func WriteDotINI(dir, suffix string, force bool) (string, error) {
	path := filepath.Join(dir, FileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return path, err
		}
	}

	if err := renameio.WriteFile(path, []byte(DotINI(suffix)), 0o644); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// SetSuffix sets worship_suffix in dir/.dot.ini and keeps the rest of the
// file. The first worship_suffix line of the [dot] section is replaced; if
// there is none the key goes below the section header, or a new section is
// appended. A missing file is created. Returns the written path.
func SetSuffix(dir, suffix string) (string, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return WriteDotINI(dir, suffix, false)
	}
	if err != nil {
		return path, err
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := renameio.WriteFile(path, []byte(replaceSuffix(string(data), suffix)), perm); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func replaceSuffix(content, suffix string) string {
	entry := Key + " = " + suffix
	lines := strings.Split(content, "\n")

	inSection := false
	header := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == ';' || trimmed[0] == '#' {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			inSection = strings.EqualFold(strings.TrimSpace(trimmed[1:len(trimmed)-1]), Section)
			if inSection && header < 0 {
				header = i
			}
			continue
		}
		if !inSection {
			continue
		}
		if k, _, ok := strings.Cut(trimmed, "="); ok && strings.EqualFold(strings.TrimSpace(k), Key) {
			lines[i] = entry
			return strings.Join(lines, "\n")
		}
	}

	if header >= 0 {
		lines = append(lines[:header+1], append([]string{entry}, lines[header+1:]...)...)
		return strings.Join(lines, "\n")
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if content != "" {
		content += "\n"
	}
	return content + DotINI(suffix)
}
