// Package hooks installs the git hooks that enforce the worship suffix.
//
// Two hooks are managed:
//
//   - commit-msg: runs "dot hook commit-msg <file>" and rejects commits whose
//     message does not end with the resolved suffix
//   - prepare-commit-msg: runs "dot hook prepare-commit-msg <file> [source]"
//     and appends the suffix to the message before the editor opens
//
// Installed scripts carry a marker line so re-running "dot init" recognizes
// its own hooks and rewrites them in place. Foreign hooks are moved to
// <name>.backup first unless backups are disabled. [Uninstall] deletes only
// marked scripts and moves such backups back into place.
package hooks
