package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/brain-trainer/constants"
	"github.com/lixenwraith/brain-trainer/controller"
	"github.com/lixenwraith/brain-trainer/game"
	"github.com/lixenwraith/brain-trainer/locale"
	"github.com/lixenwraith/brain-trainer/score"
)

const (
	optionHeight  = 3
	wordBoxWidth  = 24
	wordBoxHeight = 5
	menuItemStep  = 3
)

// Renderer draws the controller state and records click targets
type Renderer struct {
	screen  tcell.Screen
	printer *locale.Printer
	theme   Theme
	targets []Target
	width   int
	height  int
}

// NewRenderer creates a renderer drawing to screen
func NewRenderer(screen tcell.Screen, printer *locale.Printer, theme Theme) *Renderer {
	return &Renderer{
		screen:  screen,
		printer: printer,
		theme:   theme,
	}
}

// HitTest returns the action under x,y from the last draw
func (r *Renderer) HitTest(x, y int) (Action, bool) {
	for i := len(r.targets) - 1; i >= 0; i-- {
		if r.targets[i].Rect.Contains(x, y) {
			return r.targets[i].Action, true
		}
	}
	return Action{}, false
}

// Targets returns the click targets of the last draw
func (r *Renderer) Targets() []Target {
	return r.targets
}

// Draw renders the current view, focus is the keyboard highlighted entry
func (r *Renderer) Draw(c *controller.Controller, now time.Time, focus int) {
	r.targets = r.targets[:0]
	r.width, r.height = r.screen.Size()
	r.screen.Fill(' ', r.theme.Base)

	if r.width < constants.MinScreenWidth || r.height < constants.MinScreenHeight {
		r.centerText(r.height/2, r.printer.T(locale.KeyScreenTooSmall), r.theme.Warning)
		r.screen.Show()
		return
	}

	switch c.View() {
	case controller.ViewMenu:
		r.drawMenu(c, focus)
	case controller.ViewHighScores:
		r.drawHighScores(c.Scores(), focus)
	case controller.ViewColorWord:
		if s, ok := c.Active().(*game.ColorWordSession); ok {
			r.drawColorWord(s.Snapshot(), focus)
		}
	case controller.ViewNumberHunt:
		if s, ok := c.Active().(*game.NumberHuntSession); ok {
			r.drawNumberHunt(s.Snapshot(now), focus)
		}
	case controller.ViewMemoryMatch:
		if s, ok := c.Active().(*game.MemoryMatchSession); ok {
			r.drawMemoryMatch(s.Snapshot(now), focus)
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawMenu(c *controller.Controller, focus int) {
	r.centerText(1, r.printer.T(locale.KeyTitle), r.theme.Accent)

	if res, ok := c.LastResult(); ok {
		r.centerText(3, r.resultText(res), r.theme.Trophy)
		label := "[ " + r.printer.T(locale.KeyDismiss) + " ]"
		lw := runewidth.StringWidth(label)
		rect := Rect{X: (r.width - lw) / 2, Y: 4, W: lw, H: 1}
		r.drawText(rect.X, rect.Y, label, r.theme.Text)
		r.addTarget(rect, Action{Kind: ActionDismiss})
	}

	scores := c.Scores()
	x := (r.width - constants.MenuItemWidth) / 2
	y := 6
	for i, act := range menuActions() {
		var label, detail string
		switch act.Kind {
		case ActionStart:
			label = fmt.Sprintf("%d  %s", i+1, r.gameName(act.Game))
			detail = r.bestText(scores, act.Game)
		case ActionHighScores:
			label = "h  " + r.printer.T(locale.KeyHighScores)
		case ActionQuit:
			label = "q  " + r.printer.T(locale.KeyQuit)
		}

		rect := Rect{X: x, Y: y, W: constants.MenuItemWidth, H: 1}
		style := r.theme.Panel
		if i == focus {
			style = r.theme.Focus
		}
		r.fill(rect, style)
		r.drawText(rect.X+1, rect.Y, label, style)
		r.addTarget(rect, act)

		if detail != "" {
			r.drawText(rect.X+3, rect.Y+1, detail, r.theme.Muted)
			y += menuItemStep
		} else {
			y += 2
		}
	}
}

func (r *Renderer) drawHighScores(scores score.Record, focus int) {
	r.centerText(1, r.printer.T(locale.KeyHighScores), r.theme.Trophy)

	x := (r.width - constants.MenuItemWidth) / 2
	for i, t := range game.AllGameTypes {
		y := 4 + i*3
		r.drawText(x, y, r.gameName(t), r.theme.Accent)
		r.drawText(x+2, y+1, r.bestText(scores, t), r.theme.Text)
	}

	r.drawBack(focus == 0)
}

func (r *Renderer) drawColorWord(st game.ColorWordState, focus int) {
	r.drawText(2, 1, r.printer.T(locale.KeyScore, st.Score), r.theme.Accent)
	timeStyle := r.theme.Text
	if st.TimeLeft <= constants.ColorWordWarningSeconds {
		timeStyle = r.theme.Warning
	}
	r.drawRight(1, r.printer.T(locale.KeyTimeLeft, st.TimeLeft), timeStyle)
	r.centerText(3, r.printer.T(locale.KeyPrompt), r.theme.Muted)

	box := Rect{X: (r.width - wordBoxWidth) / 2, Y: 5, W: wordBoxWidth, H: wordBoxHeight}
	border := r.theme.Muted
	switch st.Feedback {
	case game.FeedbackCorrect:
		border = r.theme.Accent
	case game.FeedbackIncorrect:
		border = r.theme.Warning
	}
	r.drawBox(box, border)
	word := strings.ToUpper(r.printer.ColorName(st.Word.Name))
	r.centerText(box.Y+box.H/2, word, r.theme.Base.Foreground(HexColor(st.Ink.Hex)).Bold(true))

	total := 2*constants.OptionWidth + 2
	x0 := (r.width - total) / 2
	y0 := box.Y + box.H + 1
	for i, opt := range st.Options {
		rect := Rect{
			X: x0 + (i%2)*(constants.OptionWidth+2),
			Y: y0 + (i/2)*(optionHeight+1),
			W: constants.OptionWidth,
			H: optionHeight,
		}
		style := r.theme.Base.Background(HexColor(opt.Hex)).Foreground(TextOn(opt.Hex))
		label := fmt.Sprintf("%d %s", i+1, r.printer.ColorName(opt.Name))
		if i == focus {
			style = style.Bold(true).Underline(true)
			label = "▶ " + label
		}
		r.drawButton(rect, label, style)
		r.addTarget(rect, Action{Kind: ActionOption, Index: i})
	}

	r.drawBack(false)
}

func (r *Renderer) drawNumberHunt(st game.NumberHuntState, focus int) {
	r.drawText(2, 1, r.printer.T(locale.KeyFind, st.Next), r.theme.Accent)
	r.drawRight(1, r.printer.T(locale.KeyElapsed, game.FormatMillis(st.ElapsedMs)), r.theme.Text)

	cellW := constants.NumberCellWidth - 1
	stepY := constants.NumberCellHeight
	y0 := 4
	if y0+st.Size*stepY > r.height-2 {
		stepY = 1
	}
	x0 := (r.width - (st.Size*constants.NumberCellWidth - 1)) / 2

	for i, v := range st.Cells {
		rect := Rect{
			X: x0 + (i%st.Size)*constants.NumberCellWidth,
			Y: y0 + (i/st.Size)*stepY,
			W: cellW,
			H: 1,
		}
		style := r.theme.Tile
		if st.Found(v) {
			style = r.theme.TileFound
		}
		if i == focus {
			style = r.theme.Focus
		}
		r.drawButton(rect, fmt.Sprintf("%d", v), style)
		r.addTarget(rect, Action{Kind: ActionCell, Index: i})
	}

	r.drawBack(false)
}

func (r *Renderer) drawMemoryMatch(st game.MemoryMatchState, focus int) {
	r.drawText(2, 1, r.printer.T(locale.KeyMoves, st.Moves), r.theme.Accent)
	r.drawRight(1, r.printer.T(locale.KeyElapsed, game.FormatMillis(st.ElapsedMs)), r.theme.Text)

	cols := constants.MemoryColumns
	x0 := (r.width - (cols*constants.CardWidth - 1)) / 2
	y0 := 4

	for i, card := range st.Cards {
		rect := Rect{
			X: x0 + (i%cols)*constants.CardWidth,
			Y: y0 + (i/cols)*constants.CardHeight,
			W: constants.CardWidth - 1,
			H: constants.CardHeight - 1,
		}
		var (
			style tcell.Style
			face  string
		)
		switch {
		case card.Matched:
			style, face = r.theme.Matched, string(card.Icon.Glyph)
		case card.FaceUp:
			style, face = r.theme.CardUp, string(card.Icon.Glyph)
		default:
			style, face = r.theme.CardDown, "?"
		}
		if i == focus {
			style = style.Reverse(true)
		}
		r.drawButton(rect, face, style)
		r.addTarget(rect, Action{Kind: ActionCard, Index: i})
	}

	r.drawBack(false)
}

// drawBack puts the back button and the key hint on the last row
func (r *Renderer) drawBack(focused bool) {
	label := "[ " + r.printer.T(locale.KeyBack) + " ]"
	rect := Rect{X: 2, Y: r.height - 1, W: runewidth.StringWidth(label), H: 1}
	style := r.theme.Text
	if focused {
		style = r.theme.Focus
	}
	r.drawText(rect.X, rect.Y, label, style)
	r.addTarget(rect, Action{Kind: ActionBack})
	r.drawRight(r.height-1, r.printer.T(locale.KeyHint), r.theme.Muted)
}

func (r *Renderer) gameName(t game.GameType) string {
	switch t {
	case game.ColorWord:
		return r.printer.T(locale.KeyColorWord)
	case game.NumberHunt:
		return r.printer.T(locale.KeyNumberHunt)
	default:
		return r.printer.T(locale.KeyMemoryMatch)
	}
}

func (r *Renderer) bestText(scores score.Record, t game.GameType) string {
	if t == game.ColorWord {
		return r.printer.T(locale.KeyBestScore, scores.ColorWord)
	}
	var best *int64
	if v, ok := scores.Best(t); ok {
		best = &v
	}
	return r.printer.T(locale.KeyBestTime, game.FormatBest(best))
}

func (r *Renderer) resultText(res game.Result) string {
	if res.GameType == game.ColorWord {
		return r.printer.T(locale.KeyResultPoints, r.gameName(res.GameType), res.Value)
	}
	return r.printer.T(locale.KeyResultTime, r.gameName(res.GameType), game.FormatMillis(res.Value))
}

func (r *Renderer) addTarget(rect Rect, act Action) {
	r.targets = append(r.targets, Target{Rect: rect, Action: act})
}

// drawText writes s from x,y, wide runes advance two cells, output is clipped to the screen
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += w
	}
}

func (r *Renderer) centerText(y int, s string, style tcell.Style) {
	r.drawText((r.width-runewidth.StringWidth(s))/2, y, s, style)
}

func (r *Renderer) drawRight(y int, s string, style tcell.Style) {
	r.drawText(r.width-2-runewidth.StringWidth(s), y, s, style)
}

func (r *Renderer) fill(rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawButton fills rect and centers label on its middle row
func (r *Renderer) drawButton(rect Rect, label string, style tcell.Style) {
	r.fill(rect, style)
	lw := runewidth.StringWidth(label)
	if lw > rect.W {
		label = runewidth.Truncate(label, rect.W, "")
		lw = runewidth.StringWidth(label)
	}
	r.drawText(rect.X+(rect.W-lw)/2, rect.Y+rect.H/2, label, style)
}

func (r *Renderer) drawBox(rect Rect, style tcell.Style) {
	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1
	for x := rect.X + 1; x < right; x++ {
		r.screen.SetContent(x, rect.Y, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		r.screen.SetContent(rect.X, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(rect.X, rect.Y, '┌', nil, style)
	r.screen.SetContent(right, rect.Y, '┐', nil, style)
	r.screen.SetContent(rect.X, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}
