// Package locale holds the UI strings in English and Swedish
package locale

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys
const (
	KeyTitle          = "app.title"
	KeyColorWord      = "game.colorWord"
	KeyNumberHunt     = "game.numberHunt"
	KeyMemoryMatch    = "game.memoryMatch"
	KeyHighScores     = "menu.highScores"
	KeyQuit           = "menu.quit"
	KeyBack           = "menu.back"
	KeyDismiss        = "menu.dismiss"
	KeyScore          = "label.score"
	KeyTimeLeft       = "label.timeLeft"
	KeyFind           = "label.find"
	KeyMoves          = "label.moves"
	KeyElapsed        = "label.elapsed"
	KeyBestScore      = "label.bestScore"
	KeyBestTime       = "label.bestTime"
	KeyPrompt         = "label.colorPrompt"
	KeyHint           = "label.hint"
	KeyResultPoints   = "banner.points"
	KeyResultTime     = "banner.time"
	KeyScreenTooSmall = "label.screenTooSmall"
)

var english = map[string]string{
	KeyTitle:          "Brain Trainer",
	KeyColorWord:      "Color Word",
	KeyNumberHunt:     "Number Hunt",
	KeyMemoryMatch:    "Memory Match",
	KeyHighScores:     "High Scores",
	KeyQuit:           "Quit",
	KeyBack:           "Back",
	KeyDismiss:        "OK",
	KeyScore:          "Score: %d",
	KeyTimeLeft:       "Time: %ds",
	KeyFind:           "Find: %d",
	KeyMoves:          "Moves: %d",
	KeyElapsed:        "%ss",
	KeyBestScore:      "Best score: %d",
	KeyBestTime:       "Best time: %ss",
	KeyPrompt:         "Pick the color of the text, not the word",
	KeyHint:           "mouse or keys, esc to go back",
	KeyResultPoints:   "%s finished with %d points",
	KeyResultTime:     "%s finished in %ss",
	KeyScreenTooSmall: "Terminal too small",
	"color.Röd":       "Red",
	"color.Blå":       "Blue",
	"color.Grön":      "Green",
	"color.Gul":       "Yellow",
	"color.Lila":      "Purple",
	"color.Orange":    "Orange",
}

var swedish = map[string]string{
	KeyTitle:          "Hjärnträning",
	KeyColorWord:      "Färgord",
	KeyNumberHunt:     "Sifferjakt",
	KeyMemoryMatch:    "Minnespar",
	KeyHighScores:     "Högsta poäng",
	KeyQuit:           "Avsluta",
	KeyBack:           "Tillbaka",
	KeyDismiss:        "OK",
	KeyScore:          "Poäng: %d",
	KeyTimeLeft:       "Tid: %ds",
	KeyFind:           "Hitta: %d",
	KeyMoves:          "Drag: %d",
	KeyElapsed:        "%ss",
	KeyBestScore:      "Bästa poäng: %d",
	KeyBestTime:       "Bästa tid: %ss",
	KeyPrompt:         "Välj textens färg, inte ordet",
	KeyHint:           "mus eller tangenter, esc för att gå tillbaka",
	KeyResultPoints:   "%s klar med %d poäng",
	KeyResultTime:     "%s klar på %ss",
	KeyScreenTooSmall: "Terminalen är för liten",
	"color.Röd":       "Röd",
	"color.Blå":       "Blå",
	"color.Grön":      "Grön",
	"color.Gul":       "Gul",
	"color.Lila":      "Lila",
	"color.Orange":    "Orange",
}

// Default is the fallback UI language
var Default = language.English

var supported = []language.Tag{language.English, language.Swedish}

var matcher = language.NewMatcher(supported)

var messages = mustBuild()

func mustBuild() catalog.Catalog {
	cat, err := build(map[language.Tag]map[string]string{
		language.English: english,
		language.Swedish: swedish,
	})
	if err != nil {
		panic(err)
	}
	return cat
}

// build registers every message of every locale with a fresh catalog
func build(locales map[language.Tag]map[string]string) (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(Default))
	for tag, msgs := range locales {
		keys := make([]string, 0, len(msgs))
		for key := range msgs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if strings.TrimSpace(key) == "" {
				return nil, fmt.Errorf("locale %s: message key cannot be blank", tag)
			}
			if err := b.SetString(tag, key, msgs[key]); err != nil {
				return nil, fmt.Errorf("locale %s: set %q: %w", tag, key, err)
			}
		}
	}
	return b, nil
}

// Supported returns the selectable UI languages
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag resolves a user supplied language name to a supported tag
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default, false
	}
	return supported[idx], true
}

// Printer formats UI strings in one language
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a printer for tag, unknown tags fall back to English
func NewPrinter(tag language.Tag) *Printer {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	resolved := supported[idx]
	return &Printer{
		tag: resolved,
		p:   message.NewPrinter(resolved, message.Catalog(messages)),
	}
}

// Tag returns the resolved language
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// T formats the message stored under key
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// ColorName returns the display name of a palette color identity
func (p *Printer) ColorName(name string) string {
	key := "color." + name
	if s := p.p.Sprintf(key); s != key {
		return s
	}
	return name
}
