// Package errors provides structured, actionable error messages for the
// vellum CLI.
//
// Each error carries a unique code (e.g., "V001") mapping to a short
// message, a detailed explanation, and a documentation URL, plus an
// optional fix suggestion and wrapped cause. Format renders the error for
// terminal display:
//
//	err := errors.New("V002").
//	    WithSuggestion("declare a migration from the document's version")
//	fmt.Fprintln(os.Stderr, err.Format())
//
// Engine-level code never uses this package; the typed errors in
// pkg/document and pkg/registry are the API surface. This package only
// dresses them up for humans at the command line.
package errors
