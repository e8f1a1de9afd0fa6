package config

// Source indicates where the worship suffix came from.
type Source string

// Suffix sources, highest priority first.
const (
	// SourceEnv indicates the DOT_WORSHIP_SUFFIX environment variable.
	SourceEnv Source = "env"

	// SourceCwd indicates .dot.ini in the current working directory.
	SourceCwd Source = "cwd"

	// SourceHome indicates .dot.ini in the home directory.
	SourceHome Source = "home"

	// SourceDefault indicates the built-in suffix.
	SourceDefault Source = "default"
)

// Describe returns a human readable hint for the source, as printed by
// "dot suffix".
func (s Source) Describe() string {
	switch s {
	case SourceEnv:
		return "environment variable " + EnvSuffix
	case SourceCwd:
		return "./" + FileName
	case SourceHome:
		return "~/" + FileName
	default:
		return "built-in default"
	}
}
