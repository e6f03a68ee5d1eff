// Package plugin defines user-registered formatting actions.
//
// Plugins extend the toolbar with custom wrap and line-prefix actions.
// A custom action carries only its name and marker text; the toggle
// semantics are shared with the built-in actions.
package plugin
