// Package selection bridges a live text input's selection reports to the
// stateless format engine.
//
// Selection is an immutable anchor/head value type. Session is the small
// piece of per-editor state the bridge needs: hosts report selection changes
// with a -1 sentinel meaning "no active selection right now" (focus churn,
// transient invalidation), and a toolbar action must act on the last real
// selection rather than the sentinel. Session keeps that last
// non-degenerate selection, resolves the effective range and substring for
// an action, and interprets the engine's result against live cursor state.
//
// A Session is owned by exactly one editor instance and must not be shared.
package selection
