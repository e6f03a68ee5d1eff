package tui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// handleKey processes a key event in document mode.
func (u *UI) handleKey(e *tcell.EventKey) {
	shift := e.Modifiers()&tcell.ModShift != 0

	switch e.Key() {
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		u.quit = true
	case tcell.KeyCtrlS:
		u.save()
	case tcell.KeyCtrlB:
		u.dispatch("bold")
	case tcell.KeyCtrlE:
		u.dispatch("italic")
	case tcell.KeyCtrlD:
		u.dispatch("strikethrough")
	case tcell.KeyCtrlT:
		u.dispatch("title")
	case tcell.KeyCtrlK:
		u.dispatch("link")
	case tcell.KeyCtrlL:
		u.dispatch("list")
	case tcell.KeyLeft:
		u.moveCursor(u.prevOffset(), shift)
	case tcell.KeyRight:
		u.moveCursor(u.nextOffset(), shift)
	case tcell.KeyUp:
		u.moveCursor(u.verticalOffset(-1), shift)
	case tcell.KeyDown:
		u.moveCursor(u.verticalOffset(1), shift)
	case tcell.KeyHome:
		u.moveCursor(u.lineEdgeOffset(true), shift)
	case tcell.KeyEnd:
		u.moveCursor(u.lineEdgeOffset(false), shift)
	case tcell.KeyEnter:
		u.insert("\n")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.deleteBack()
	case tcell.KeyDelete:
		u.deleteForward()
	case tcell.KeyRune:
		u.insert(string(e.Rune()))
	}
}

// moveCursor repositions the cursor, extending the selection when the
// shift modifier is held.
func (u *UI) moveCursor(offset int, extend bool) {
	u.cursor = offset
	if !extend {
		u.anchor = offset
	}
	u.status = ""
	u.syncSelection()
}

// insert replaces the selection (or inserts at the cursor) with text.
func (u *UI) insert(text string) {
	buf := u.editor.Buffer()
	start, end := u.selBounds()

	newEnd, err := buf.Replace(start, end, text)
	if err != nil {
		u.status = err.Error()
		return
	}
	u.cursor = newEnd
	u.anchor = newEnd
	u.syncSelection()
}

// deleteBack removes the selection, or the rune before the cursor.
func (u *UI) deleteBack() {
	start, end := u.selBounds()
	if start == end {
		if start == 0 {
			return
		}
		start = u.prevOffset()
	}
	u.deleteRange(start, end)
}

// deleteForward removes the selection, or the rune after the cursor.
func (u *UI) deleteForward() {
	start, end := u.selBounds()
	if start == end {
		if end >= u.editor.Buffer().Len() {
			return
		}
		end = u.nextOffset()
	}
	u.deleteRange(start, end)
}

func (u *UI) deleteRange(start, end int) {
	if err := u.editor.Buffer().Delete(start, end); err != nil {
		u.status = err.Error()
		return
	}
	u.cursor = start
	u.anchor = start
	u.syncSelection()
}

// selBounds returns the normalized selection bounds.
func (u *UI) selBounds() (int, int) {
	if u.anchor <= u.cursor {
		return u.anchor, u.cursor
	}
	return u.cursor, u.anchor
}

// prevOffset steps the cursor back one rune.
func (u *UI) prevOffset() int {
	text := u.editor.Buffer().Text()
	if u.cursor <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:u.cursor])
	return u.cursor - size
}

// nextOffset steps the cursor forward one rune.
func (u *UI) nextOffset() int {
	buf := u.editor.Buffer()
	if u.cursor >= buf.Len() {
		return buf.Len()
	}
	_, size := buf.RuneAt(u.cursor)
	return u.cursor + size
}

// verticalOffset moves the cursor by delta lines, keeping the column
// when the target line is long enough.
func (u *UI) verticalOffset(delta int) int {
	buf := u.editor.Buffer()
	point := buf.OffsetToPoint(u.cursor)

	line := point.Line + delta
	if line < 0 {
		return 0
	}
	if line >= buf.LineCount() {
		return buf.Len()
	}
	return buf.PointToOffset(buffer.Point{Line: line, Column: point.Column})
}

// lineEdgeOffset returns the start or end offset of the cursor line.
func (u *UI) lineEdgeOffset(start bool) int {
	buf := u.editor.Buffer()
	line := buf.OffsetToPoint(u.cursor).Line
	if start {
		return buf.LineStartOffset(line)
	}
	return buf.LineEndOffset(line)
}
