// Package envfile implements driven.EnvStore on top of plain .env files.
//
// # File Format
//
// One KEY=VALUE entry per line. Lines are trimmed; blank lines and lines
// starting with '#' are ignored. Key and value are split on the first '='
// and trimmed, so values may contain further '=' characters. Lines without
// '=' or with an empty key are skipped.
//
// No quoting or escaping is performed. A value containing a newline, or
// leading/trailing whitespace, does not survive a save/load cycle.
//
// Saving rewrites the whole file in place; comments and blank lines from
// the original file are not preserved.
package envfile
