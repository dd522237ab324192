package ui

import "github.com/lixenwraith/brain-trainer/game"

// ActionKind is what a click or key press asks the controller to do
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionStart
	ActionHighScores
	ActionQuit
	ActionBack
	ActionDismiss
	ActionOption
	ActionCell
	ActionCard
)

// Action is one resolved user intent
type Action struct {
	Kind  ActionKind
	Game  game.GameType // ActionStart
	Index int           // ActionOption, ActionCell, ActionCard
}

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x,y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Target is a clickable region recorded during the last draw
type Target struct {
	Rect   Rect
	Action Action
}

// menuActions lists the focusable menu entries in draw order
func menuActions() []Action {
	out := make([]Action, 0, len(game.AllGameTypes)+2)
	for _, t := range game.AllGameTypes {
		out = append(out, Action{Kind: ActionStart, Game: t})
	}
	return append(out, Action{Kind: ActionHighScores}, Action{Kind: ActionQuit})
}
