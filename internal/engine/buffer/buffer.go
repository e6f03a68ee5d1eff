package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// Buffer holds document text as a flat string with a line-start index.
// It provides the primary interface for text manipulation.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	content    string
	lineStarts []ByteOffset // byte offset of the start of each line
	revisionID RevisionID
	lineEnding LineEnding
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lineStarts: []ByteOffset{0},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.content = b.normalizeLineEndings(s)
	b.reindex()
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	b := NewBuffer(opts...)

	// Read all content first to handle line ending normalization correctly
	// (CRLF sequences may be split across read boundaries)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	b.content = b.normalizeLineEndings(string(data))
	b.reindex()
	return b, nil
}

// normalizeLineEndings converts all line endings to the buffer's preferred style.
func (b *Buffer) normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if b.lineEnding == LineEndingCRLF {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	return s
}

// reindex rebuilds the line-start index. Caller must hold the write lock
// (or exclusive access during construction).
func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(b.content); i++ {
		if b.content[i] == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content
}

// TextRange returns text in the given byte range.
// Out-of-range offsets are clamped to the buffer bounds.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	start, end = clampRange(start, end, len(b.content))
	return b.content[start:end]
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.content)
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lineStarts)
}

// LineText returns the text of a specific line (without newline).
// Returns the empty string for out-of-range lines.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 0 || line >= len(b.lineStarts) {
		return ""
	}
	return b.content[b.lineStarts[line]:b.lineEndLocked(line)]
}

// LineLen returns the length of a specific line in bytes (without newline).
func (b *Buffer) LineLen(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 0 || line >= len(b.lineStarts) {
		return 0
	}
	return b.lineEndLocked(line) - b.lineStarts[line]
}

// RuneAt returns the rune at the given byte offset.
// Returns utf8.RuneError and size 0 if offset is out of range.
func (b *Buffer) RuneAt(offset ByteOffset) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if offset < 0 || offset >= len(b.content) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(b.content[offset:])
}

// Coordinate Conversion

// OffsetToPoint converts a byte offset to line/column.
// Out-of-range offsets are clamped to the buffer bounds.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset > len(b.content) {
		offset = len(b.content)
	}

	line := b.lineForOffsetLocked(offset)
	return Point{Line: line, Column: offset - b.lineStarts[line]}
}

// PointToOffset converts line/column to byte offset.
// Columns past the end of the line clamp to the line end.
func (b *Buffer) PointToOffset(point Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if point.Line < 0 {
		return 0
	}
	if point.Line >= len(b.lineStarts) {
		return len(b.content)
	}

	offset := b.lineStarts[point.Line] + point.Column
	if end := b.lineEndLocked(point.Line); offset > end {
		offset = end
	}
	if offset < b.lineStarts[point.Line] {
		offset = b.lineStarts[point.Line]
	}
	return offset
}

// LineStartOffset returns the byte offset of the start of a line.
func (b *Buffer) LineStartOffset(line int) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return len(b.content)
	}
	return b.lineStarts[line]
}

// LineEndOffset returns the byte offset of the end of a line (before newline).
func (b *Buffer) LineEndOffset(line int) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return len(b.content)
	}
	return b.lineEndLocked(line)
}

// lineEndLocked returns the end offset of a line. Caller must hold a lock.
func (b *Buffer) lineEndLocked(line int) ByteOffset {
	if line+1 < len(b.lineStarts) {
		end := b.lineStarts[line+1] - 1 // before the newline
		if end > 0 && b.content[end-1] == '\r' {
			end-- // CRLF: also exclude the carriage return
		}
		return end
	}
	return len(b.content)
}

// lineForOffsetLocked returns the line containing offset via binary search.
// Caller must hold a lock.
func (b *Buffer) lineForOffsetLocked(offset ByteOffset) int {
	lo, hi := 0, len(b.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > len(b.content) {
		return 0, ErrOffsetOutOfRange
	}

	text = b.normalizeLineEndings(text)
	b.content = b.content[:offset] + text + b.content[offset:]
	b.reindex()
	b.revisionID = NewRevisionID()

	return offset + len(text), nil
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > len(b.content) {
		return ErrRangeInvalid
	}

	b.content = b.content[:start] + b.content[end:]
	b.reindex()
	b.revisionID = NewRevisionID()

	return nil
}

// Replace replaces text in the given range with new text.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > len(b.content) {
		return 0, ErrRangeInvalid
	}

	text = b.normalizeLineEndings(text)
	b.content = b.content[:start] + text + b.content[end:]
	b.reindex()
	b.revisionID = NewRevisionID()

	return start + len(text), nil
}

// SetText replaces the entire buffer content.
// This is the path used when a formatting action returns a full
// replacement document.
func (b *Buffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.content = b.normalizeLineEndings(text)
	b.reindex()
	b.revisionID = NewRevisionID()
}

// ApplyEdit applies a single edit to the buffer.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if edit.Range.Start < 0 || edit.Range.Start > edit.Range.End ||
		edit.Range.End > len(b.content) {
		return EditResult{}, ErrRangeInvalid
	}

	oldText := b.content[edit.Range.Start:edit.Range.End]
	text := b.normalizeLineEndings(edit.NewText)
	b.content = b.content[:edit.Range.Start] + text + b.content[edit.Range.End:]
	b.reindex()
	b.revisionID = NewRevisionID()

	newEnd := edit.Range.Start + len(text)

	return EditResult{
		OldRange: edit.Range,
		NewRange: Range{Start: edit.Range.Start, End: newEnd},
		OldText:  oldText,
		Delta:    len(text) - edit.Range.Len(),
	}, nil
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.content) == 0
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// Snapshot returns a read-only snapshot of the current buffer state.
// Safe for concurrent access from other goroutines.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return &Snapshot{
		content:    b.content, // strings are immutable, safe to share
		revisionID: b.revisionID,
		lineEnding: b.lineEnding,
	}
}

// clampRange clamps start and end into [0, max] and orders them.
func clampRange(start, end, max ByteOffset) (ByteOffset, ByteOffset) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > max {
		end = max
	}
	if start > max {
		start = max
	}
	return start, end
}
