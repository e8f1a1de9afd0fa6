// Package prompt provides simple interactive prompts.
//
// Prompts render to stderr so stdout stays usable for piping.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
package prompt
