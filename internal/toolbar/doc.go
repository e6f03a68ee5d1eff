// Package toolbar dispatches formatting actions against a document.
//
// A Toolbar binds the formatting engine, the document buffer and the
// selection session together. Items come from configuration plus any
// plugin-registered actions. The Link action uses a two-step prompt so
// the host can collect a label and URL before applying.
package toolbar
