package config

import "strings"

// Recognized section and key in .dot.ini.
const (
	Section = "dot"
	Key     = "worship_suffix"
)

// ExtractSuffix returns the worship_suffix value of the [dot] section.
func ExtractSuffix(content string) (string, bool) {
	return Extract(content, Section, Key)
}

// Extract scans INI-style content for key inside section. Section and key
// names match case-insensitively. Blank lines and lines starting with ';' or
// '#' are ignored everywhere. Keys outside the section are ignored even when
// their name matches. The first non-blank value wins; a whitespace-only value
// counts as absent.
func Extract(content, section, key string) (string, bool) {
	inSection := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			inSection = strings.EqualFold(name, section)
			continue
		}

		if !inSection {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(k), key) {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}

	return "", false
}
