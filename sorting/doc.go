// Package sorting translates client sort strings into ordering recipes.
//
// A sort string is a comma separated list of public field names, each
// optionally prefixed with "-" for descending order:
//
//	sort=-value,date
//
// Every resource declares a Definition mapping its public sort fields to
// internal ordering keys. Translate keeps the client's left-to-right order,
// drops tokens the definition does not know, and falls back to a default
// field when nothing survives. Unknown tokens are never an error; callers
// that want to reject them can use Validate.
package sorting
