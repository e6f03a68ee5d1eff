package buffer

// Snapshot is an immutable point-in-time view of a buffer.
// Snapshots are safe for concurrent use without locking.
type Snapshot struct {
	content    string
	revisionID RevisionID
	lineEnding LineEnding
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string {
	return s.content
}

// TextRange returns text in the given byte range.
// Out-of-range offsets are clamped to the snapshot bounds.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	start, end = clampRange(start, end, len(s.content))
	return s.content[start:end]
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return len(s.content)
}

// IsEmpty returns true if the snapshot is empty.
func (s *Snapshot) IsEmpty() bool {
	return len(s.content) == 0
}

// RevisionID returns the revision this snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// LineEnding returns the snapshot's line ending style.
func (s *Snapshot) LineEnding() LineEnding {
	return s.lineEnding
}
