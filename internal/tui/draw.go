package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault  = tcell.StyleDefault
	styleToolbar  = tcell.StyleDefault.Reverse(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleStatus   = tcell.StyleDefault.Dim(true)
)

// draw renders the full frame: toolbar, document, status or prompt.
func (u *UI) draw() {
	u.screen.Clear()
	width, height := u.screen.Size()

	u.drawToolbar(width)
	u.drawDocument(width, height)
	u.drawBottomRow(width, height)

	u.screen.Show()
}

// drawToolbar renders the item labels on row zero.
func (u *UI) drawToolbar(width int) {
	x := 0
	for _, item := range u.editor.Toolbar().Items() {
		label := " " + item.Label() + " "
		for _, r := range label {
			if x >= width {
				return
			}
			u.screen.SetContent(x, 0, r, nil, styleToolbar)
			x++
		}
		if x < width {
			u.screen.SetContent(x, 0, ' ', nil, styleDefault)
			x++
		}
	}
}

// toolbarItemAt maps a toolbar row column to an item name.
func (u *UI) toolbarItemAt(x int) (string, bool) {
	col := 0
	for _, item := range u.editor.Toolbar().Items() {
		w := len([]rune(item.Label())) + 2
		if x >= col && x < col+w {
			return item.Name, true
		}
		col += w + 1
	}
	return "", false
}

// drawDocument renders the buffer lines with the selection highlighted.
func (u *UI) drawDocument(width, height int) {
	buf := u.editor.Buffer()
	selStart, selEnd := u.selBounds()

	rows := height - 2
	for line := 0; line < buf.LineCount() && line < rows; line++ {
		lineStart := buf.LineStartOffset(line)
		text := buf.LineText(line)

		x := 0
		for i, r := range text {
			if x >= width {
				break
			}
			offset := lineStart + i
			style := styleDefault
			if offset >= selStart && offset < selEnd {
				style = styleSelected
			}
			u.screen.SetContent(x, line+1, r, nil, style)
			x++
		}
	}

	point := buf.OffsetToPoint(u.cursor)
	if point.Line < rows {
		u.screen.ShowCursor(point.Column, point.Line+1)
	} else {
		u.screen.HideCursor()
	}
}

// drawBottomRow renders the status line, or the link prompt when open.
func (u *UI) drawBottomRow(width, height int) {
	y := height - 1
	if y < 1 {
		return
	}

	var line string
	if u.prompt != nil {
		line = u.promptLine()
	} else {
		point := u.editor.Buffer().OffsetToPoint(u.cursor)
		line = fmt.Sprintf("%d:%d", point.Line+1, point.Column+1)
		if u.status != "" {
			line += "  " + u.status
		}
	}

	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		u.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
}

// promptLine formats the link prompt with the active field marked.
func (u *UI) promptLine() string {
	p := u.prompt
	var b strings.Builder

	b.WriteString("link  label")
	if !p.onURL {
		b.WriteString("*")
	}
	b.WriteString(": ")
	b.WriteString(string(p.label))
	b.WriteString("  url")
	if p.onURL {
		b.WriteString("*")
	}
	b.WriteString(": ")
	b.WriteString(string(p.url))
	b.WriteString("  (tab switches, enter confirms, esc cancels)")
	return b.String()
}
