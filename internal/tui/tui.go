package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/markstorm/internal/app"
	"github.com/dshills/markstorm/internal/engine/selection"
	"github.com/dshills/markstorm/internal/toolbar"
)

// UI drives a terminal session over an editor.
type UI struct {
	screen tcell.Screen
	editor *app.Editor

	// cursor and anchor are byte offsets into the document. When they
	// differ a selection is active.
	cursor int
	anchor int

	savePath string
	status   string
	prompt   *linkPromptState

	quit bool
}

// New creates a UI over an editor. A nil screen allocates a real
// terminal screen; tests pass a simulation screen.
func New(ed *app.Editor, screen tcell.Screen) (*UI, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("creating screen: %w", err)
		}
		screen = s
	}
	return &UI{screen: screen, editor: ed}, nil
}

// SetSavePath sets the file Ctrl+S writes to.
func (u *UI) SetSavePath(path string) { u.savePath = path }

// Run initializes the screen and processes events until quit.
func (u *UI) Run() error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer u.screen.Fini()

	u.screen.EnableMouse()
	u.syncSelection()

	for !u.quit {
		u.draw()
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		u.handleEvent(ev)
	}
	return nil
}

// handleEvent routes one terminal event.
func (u *UI) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if u.prompt != nil {
			u.handlePromptKey(e)
			return
		}
		u.handleKey(e)
	case *tcell.EventMouse:
		u.handleMouse(e)
	case *tcell.EventResize:
		u.screen.Sync()
	}
}

// handleMouse dispatches toolbar clicks.
func (u *UI) handleMouse(e *tcell.EventMouse) {
	if e.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := e.Position()
	if y != 0 {
		return
	}
	if name, ok := u.toolbarItemAt(x); ok {
		u.dispatch(name)
	}
}

// dispatch runs a named action, routing the link action to the prompt.
func (u *UI) dispatch(name string) {
	tb := u.editor.Toolbar()

	res, err := tb.Dispatch(name)
	if errors.Is(err, toolbar.ErrLinkNeedsPrompt) {
		u.openLinkPrompt()
		return
	}
	if err != nil {
		u.status = err.Error()
		return
	}
	u.applyDispatch(name, res)
}

// applyDispatch settles the UI cursor after a completed action.
func (u *UI) applyDispatch(name string, res toolbar.DispatchResult) {
	u.cursor = res.Cursor
	u.anchor = res.Cursor
	u.status = fmt.Sprintf("applied %s", name)
}

// syncSelection reports the UI cursor state to the selection session.
func (u *UI) syncSelection() {
	u.editor.Session().Observe(selection.New(u.anchor, u.cursor))
}

func (u *UI) save() {
	if u.savePath == "" {
		u.status = "no file to save to"
		return
	}
	if err := u.editor.SaveTo(u.savePath); err != nil {
		u.status = err.Error()
		return
	}
	u.status = fmt.Sprintf("saved %s", u.savePath)
}
