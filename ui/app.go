// Package ui draws the games to a tcell screen and turns key and mouse events into controller calls
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/constants"
	"github.com/lixenwraith/brain-trainer/controller"
	"github.com/lixenwraith/brain-trainer/game"
	"github.com/lixenwraith/brain-trainer/locale"
)

// App binds a screen to a controller
// Not safe for concurrent use, events and frames come from one loop
type App struct {
	screen   tcell.Screen
	ctrl     *controller.Controller
	renderer *Renderer
	logger   zerolog.Logger

	focus       int
	lastView    controller.View
	lastButtons tcell.ButtonMask
}

// NewApp creates the presentation layer for ctrl
func NewApp(screen tcell.Screen, ctrl *controller.Controller, printer *locale.Printer, logger zerolog.Logger) *App {
	return &App{
		screen:   screen,
		ctrl:     ctrl,
		renderer: NewRenderer(screen, printer, DefaultTheme()),
		logger:   logger.With().Str("component", "ui").Logger(),
		lastView: ctrl.View(),
	}
}

// Renderer exposes the renderer for hit testing
func (a *App) Renderer() *Renderer {
	return a.renderer
}

// Focus returns the keyboard highlighted entry
func (a *App) Focus() int {
	return a.focus
}

// Frame advances the controller to now and redraws
func (a *App) Frame(now time.Time) {
	a.ctrl.Update(now)
	a.draw(now)
}

// HandleEvent applies one terminal event, false means the user asked to quit
func (a *App) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !a.handleKey(ev, now) {
			return false
		}
	case *tcell.EventMouse:
		if !a.handleMouse(ev, now) {
			return false
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	a.draw(now)
	return true
}

// Do performs an action, false means quit
func (a *App) Do(act Action, now time.Time) bool {
	switch act.Kind {
	case ActionStart:
		if err := a.ctrl.Start(now, act.Game); err != nil {
			a.logger.Error().Err(err).Str("game", string(act.Game)).Msg("start failed")
		}
	case ActionHighScores:
		a.ctrl.ShowHighScores()
	case ActionQuit:
		return false
	case ActionBack:
		a.ctrl.Back()
	case ActionDismiss:
		a.ctrl.DismissResult()
	case ActionOption:
		a.ctrl.SubmitOption(now, act.Index)
	case ActionCell:
		a.ctrl.TapCell(now, act.Index)
	case ActionCard:
		a.ctrl.Flip(now, act.Index)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey, now time.Time) bool {
	view := a.ctrl.View()

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if view == controller.ViewMenu {
			return false
		}
		a.ctrl.Back()
		return true
	case tcell.KeyLeft:
		a.moveFocus(-1, 0, now)
		return true
	case tcell.KeyRight:
		a.moveFocus(1, 0, now)
		return true
	case tcell.KeyUp:
		a.moveFocus(0, -1, now)
		return true
	case tcell.KeyDown:
		a.moveFocus(0, 1, now)
		return true
	case tcell.KeyEnter:
		return a.Do(a.focusAction(), now)
	case tcell.KeyRune:
	default:
		return true
	}

	ch := ev.Rune()
	if ch == ' ' {
		return a.Do(a.focusAction(), now)
	}

	switch view {
	case controller.ViewMenu:
		switch {
		case ch >= '1' && int(ch-'1') < len(game.AllGameTypes):
			return a.Do(Action{Kind: ActionStart, Game: game.AllGameTypes[ch-'1']}, now)
		case ch == 'h':
			return a.Do(Action{Kind: ActionHighScores}, now)
		case ch == 'd':
			return a.Do(Action{Kind: ActionDismiss}, now)
		case ch == 'q':
			return false
		}
	case controller.ViewColorWord:
		if ch >= '1' && ch <= '9' {
			return a.Do(Action{Kind: ActionOption, Index: int(ch - '1')}, now)
		}
	case controller.ViewHighScores:
		if ch == 'b' || ch == 'q' {
			return a.Do(Action{Kind: ActionBack}, now)
		}
	}
	return true
}

// handleMouse acts on the press edge of the primary button only
func (a *App) handleMouse(ev *tcell.EventMouse, now time.Time) bool {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0
	a.lastButtons = buttons
	if !pressed {
		return true
	}

	x, y := ev.Position()
	act, ok := a.renderer.HitTest(x, y)
	if !ok {
		return true
	}
	return a.Do(act, now)
}

func (a *App) draw(now time.Time) {
	if v := a.ctrl.View(); v != a.lastView {
		a.lastView = v
		a.focus = 0
	}
	a.renderer.Draw(a.ctrl, now, a.focus)
}

// focusGrid returns the number of focusable entries and their column count for the current view
func (a *App) focusGrid(now time.Time) (count, cols int) {
	switch a.ctrl.View() {
	case controller.ViewMenu:
		return len(menuActions()), 1
	case controller.ViewColorWord:
		return 4, 2
	case controller.ViewNumberHunt:
		if s, ok := a.ctrl.Active().(*game.NumberHuntSession); ok {
			st := s.Snapshot(now)
			return len(st.Cells), st.Size
		}
	case controller.ViewMemoryMatch:
		if s, ok := a.ctrl.Active().(*game.MemoryMatchSession); ok {
			return len(s.Snapshot(now).Cards), constants.MemoryColumns
		}
	}
	return 1, 1
}

func (a *App) moveFocus(dx, dy int, now time.Time) {
	count, cols := a.focusGrid(now)
	next := a.focus + dx + dy*cols
	if next < 0 || next >= count {
		return
	}
	a.focus = next
}

func (a *App) focusAction() Action {
	switch a.ctrl.View() {
	case controller.ViewMenu:
		acts := menuActions()
		if a.focus < len(acts) {
			return acts[a.focus]
		}
	case controller.ViewColorWord:
		return Action{Kind: ActionOption, Index: a.focus}
	case controller.ViewNumberHunt:
		return Action{Kind: ActionCell, Index: a.focus}
	case controller.ViewMemoryMatch:
		return Action{Kind: ActionCard, Index: a.focus}
	case controller.ViewHighScores:
		return Action{Kind: ActionBack}
	}
	return Action{}
}
