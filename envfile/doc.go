// Package envfile parses .env files and hoists their variables into an
// environment.
//
// Grammar, one assignment per line:
//
//	# comment
//	NAME=value
//	NAME:value
//	export NAME=value
//	NAME="multi\nline"
//	NAME='literal\n'
//
// The name ends at the first '=' or ':'. The value is the trimmed remainder
// of the line. A value wrapped in matching double quotes has the quotes
// removed and every \n expanded to a newline; a value wrapped in matching
// single quotes only has the quotes removed. Inline '#' is part of the value.
//
// The Loader treats the file as a set of defaults: variables already present
// in the environment are never overwritten. A process-scoped State remembers
// the last file loaded so repeated initializations do not re-read it.
package envfile
