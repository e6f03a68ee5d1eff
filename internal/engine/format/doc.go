// Package format implements the selection-aware markdown transformation
// engine. Given a formatting action, the current document text, and a
// selection range, it computes the replacement document and where the cursor
// or selection should land afterward.
//
// The engine is a pure function of its inputs: no state is retained between
// calls, identical inputs always produce identical results, and the input
// text is never mutated.
//
// Three families of transformations are provided:
//
//   - Wrapping actions (Bold, Italic, StrikeThrough) surround the selection
//     with a marker pair, or remove the pair when the selection is already
//     wrapped. An empty selection inserts an empty pair and reports how far
//     the cursor must step back to land between the markers.
//   - Line-scoped actions (Title, List) toggle a line prefix on every line
//     touched by the selection.
//   - Link substitutes a [label](url) construct for the selection.
//
// Whether a span is already formatted is decided by peeking at the bytes
// adjacent to the selection, not by tracking format spans. The peek is
// exposed as Wrapped so it can be tested against arbitrary buffers,
// including text containing stray marker characters.
//
// All offsets are byte offsets into the text. Markers and line prefixes are
// ASCII, so byte arithmetic never splits a UTF-8 sequence in the surrounding
// text.
package format
