package dot

import "strings"

// scissors marks the start of the diff appended by "git commit --verbose".
const scissors = "# ------------------------ >8 ------------------------"

// CleanMessage strips what git strips with the default cleanup mode before
// storing a commit message: lines starting with '#' and everything after a
// scissors line.
func CleanMessage(message string) string {
	lines := strings.Split(message, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimRight(line, "\r") == scissors {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimRight(strings.Join(kept, "\n"), " \t\r\n")
}

// AppendSuffix returns message ending with suffix. A one-line message gets
// the suffix on the same line; a message with a body gets it as a final
// paragraph; an empty message gets it below a blank subject line.
// The comment block git appends below the message, and any scissors section,
// stay after the suffix. Messages that already match are returned unchanged.
func AppendSuffix(message, suffix string) string {
	content := CleanMessage(message)
	if Matches(content, suffix) {
		return message
	}

	head, comments := splitTrailingComments(message)
	body := strings.TrimRight(head, " \t\r\n")

	var b strings.Builder
	switch {
	case content == "":
		// leave the first line free for the subject
		b.WriteString("\n\n")
		b.WriteString(suffix)
	case strings.Contains(content, "\n"):
		b.WriteString(body)
		b.WriteString("\n\n")
		b.WriteString(suffix)
	default:
		b.WriteString(body)
		b.WriteString(" ")
		b.WriteString(suffix)
	}
	b.WriteString("\n")
	if comments != "" {
		b.WriteString("\n")
		b.WriteString(comments)
	}
	return b.String()
}

// splitTrailingComments splits message before the run of comment and blank
// lines at its end, or before the scissors line and the comments directly
// above it. Comment lines between text lines stay in head.
func splitTrailingComments(message string) (head, comments string) {
	lines := strings.Split(message, "\n")

	end := len(lines)
	for i, line := range lines {
		if strings.TrimRight(line, "\r") == scissors {
			end = i
			break
		}
	}

	start := end
	for i := end - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "#") {
			start = i
			continue
		}
		if strings.TrimSpace(lines[i]) != "" {
			break
		}
	}

	if start == len(lines) {
		return message, ""
	}
	return strings.Join(lines[:start], "\n"), strings.Join(lines[start:], "\n")
}
