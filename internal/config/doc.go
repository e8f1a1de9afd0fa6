// Package config resolves the worship suffix and loads user preferences.
//
// # Suffix Sources (highest priority first)
//
//   - DOT_WORSHIP_SUFFIX env var (trimmed, blank is ignored)
//   - .dot.ini in the current working directory
//   - .dot.ini in the home directory
//   - Built-in default "BECAUSE I WORSHIP THE DOT"
//
// A source that is missing, unreadable or has no non-blank value is skipped.
// Resolution never fails and is never cached.
//
// # .dot.ini
//
// Only one section and one key are recognized, both case-insensitive:
//
//	[dot]
//	; comments start with ; or #
//	worship_suffix = BECAUSE I WORSHIP THE DOT
//
// Other sections may coexist in the file and are ignored.
//
// # Preferences
//
// User preferences live in ~/.config/dot/config.toml (DOT_CONFIG overrides the
// location) and control the default worshipper name, output styling, stats
// tracking and hook backups. A missing file means defaults.
package config
