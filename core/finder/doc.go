// Package finder wraps the external interactive fuzzy matcher.
//
// The matcher is modeled as an injected capability (the Finder interface) so
// the selection flow is testable without spawning a real interactive process.
// The production implementation shells out to fzf, feeding the flattened
// display lines on stdin and reading the operator's choice from stdout.
package finder
