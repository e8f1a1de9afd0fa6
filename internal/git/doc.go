// Package git provides the few repository queries dot needs, via the git CLI.
//
// All operations shell out through the cmd package so they honor the user's
// git configuration and show up in --verbose traces. An empty dir argument
// means the process working directory.
//
//   - [CheckGit]: git is in PATH
//   - [IsInsideRepo], [GitDir], [TopLevel]: repository detection
//   - [CurrentBranch]: branch shown by doctor
//   - [HooksDir]: hook installation target (respects core.hooksPath)
package git
