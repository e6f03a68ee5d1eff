package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/markstorm/internal/toolbar"
)

// linkPromptState is the in-progress link dialog. The label field
// pre-fills with the captured selection; Tab switches fields, Enter
// confirms and Escape cancels.
type linkPromptState struct {
	prompt *toolbar.LinkPrompt

	label []rune
	url   []rune
	onURL bool
}

// openLinkPrompt captures the selection and shows the prompt row.
func (u *UI) openLinkPrompt() {
	p, err := u.editor.Toolbar().BeginLink()
	if err != nil {
		u.status = err.Error()
		return
	}
	u.prompt = &linkPromptState{
		prompt: p,
		label:  []rune(p.Selected()),
	}
	u.status = ""
}

// handlePromptKey processes a key event while the link prompt is open.
func (u *UI) handlePromptKey(e *tcell.EventKey) {
	p := u.prompt

	switch e.Key() {
	case tcell.KeyEscape:
		_ = p.prompt.Cancel()
		u.prompt = nil
	case tcell.KeyTab:
		p.onURL = !p.onURL
	case tcell.KeyEnter:
		res, err := p.prompt.Confirm(string(p.label), string(p.url))
		u.prompt = nil
		if err != nil {
			u.status = err.Error()
			return
		}
		u.applyDispatch("link", res)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		field := p.field()
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
	case tcell.KeyRune:
		field := p.field()
		*field = append(*field, e.Rune())
	}
}

// field returns the active input field.
func (p *linkPromptState) field() *[]rune {
	if p.onURL {
		return &p.url
	}
	return &p.label
}
