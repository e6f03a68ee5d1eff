// Package lua hosts the Lua plugin runtime.
//
// Scripts run in a sandboxed state with only the base, table, string and
// math libraries available. A script extends the toolbar through the
// markstorm module:
//
//	markstorm.register_wrap("highlight", "==")
//	markstorm.register_line_prefix("quote", "> ")
//
// Registered actions land in a plugin.Registry shared with the host.
package lua
