package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// OptionCount is the number of answer options in a color/word problem
const OptionCount = 4

var (
	ErrPaletteTooSmall   = errors.New("palette has too few distinct colors")
	ErrDuplicateIdentity = errors.New("duplicate identity")
	ErrInvalidGridSize   = errors.New("grid size must be positive")
	ErrNoIcons           = errors.New("icon set is empty")
)

// Source is the randomness the generators draw from, *rand.Rand satisfies it
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source, seed 0 seeds from the clock
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes s in place with Fisher-Yates
func Shuffle[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Problem is one color/word prompt: Word is the text shown, Ink the color it is drawn in
type Problem struct {
	Word    Color
	Ink     Color
	Options []Color
}

// ValidatePalette checks the palette can produce problems with OptionCount distinct options
func ValidatePalette(palette []Color) error {
	seen := make(map[string]struct{}, len(palette))
	for _, c := range palette {
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("color %q: %w", c.Name, ErrDuplicateIdentity)
		}
		seen[c.Name] = struct{}{}
	}
	if len(seen) < OptionCount {
		return fmt.Errorf("%d colors, need %d: %w", len(seen), OptionCount, ErrPaletteTooSmall)
	}
	return nil
}

// NewColorWordProblem draws word and ink independently, resampling ink until it differs from the word
// Options hold the ink plus distractors drawn without replacement, in random order
func NewColorWordProblem(src Source, palette []Color) (Problem, error) {
	if err := ValidatePalette(palette); err != nil {
		return Problem{}, err
	}

	word := palette[src.IntN(len(palette))]
	ink := palette[src.IntN(len(palette))]
	for ink.Name == word.Name {
		ink = palette[src.IntN(len(palette))]
	}

	rest := make([]Color, 0, len(palette)-1)
	for _, c := range palette {
		if c.Name != ink.Name {
			rest = append(rest, c)
		}
	}
	Shuffle(src, rest)

	options := make([]Color, 0, OptionCount)
	options = append(options, ink)
	options = append(options, rest[:OptionCount-1]...)
	Shuffle(src, options)

	return Problem{Word: word, Ink: ink, Options: options}, nil
}

// NewNumberGrid returns a uniform random permutation of 1..n*n in row-major order
func NewNumberGrid(src Source, n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("size %d: %w", n, ErrInvalidGridSize)
	}
	cells := make([]int, n*n)
	for i := range cells {
		cells[i] = i + 1
	}
	Shuffle(src, cells)
	return cells, nil
}

// NewMemoryBoard returns each icon twice in uniform random order
func NewMemoryBoard(src Source, icons []Icon) ([]Icon, error) {
	if len(icons) == 0 {
		return nil, ErrNoIcons
	}
	seen := make(map[string]struct{}, len(icons))
	cards := make([]Icon, 0, 2*len(icons))
	for _, icon := range icons {
		if _, ok := seen[icon.Name]; ok {
			return nil, fmt.Errorf("icon %q: %w", icon.Name, ErrDuplicateIdentity)
		}
		seen[icon.Name] = struct{}{}
		cards = append(cards, icon, icon)
	}
	Shuffle(src, cards)
	return cards, nil
}
