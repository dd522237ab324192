package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range english {
		if _, ok := swedish[key]; !ok {
			t.Errorf("Swedish catalog is missing %q", key)
		}
	}
	for key := range swedish {
		if _, ok := english[key]; !ok {
			t.Errorf("English catalog is missing %q", key)
		}
	}
}

func TestPrinterTranslates(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		key  string
		args []any
		want string
	}{
		{language.English, KeyScore, []any{7}, "Score: 7"},
		{language.Swedish, KeyScore, []any{7}, "Poäng: 7"},
		{language.Swedish, KeyFind, []any{12}, "Hitta: 12"},
		{language.Swedish, KeyMoves, []any{3}, "Drag: 3"},
		{language.English, KeyResultTime, []any{"Number Hunt", "12.34"}, "Number Hunt finished in 12.34s"},
		{language.Swedish, KeyMemoryMatch, nil, "Minnespar"},
	}

	for _, tt := range tests {
		got := NewPrinter(tt.tag).T(tt.key, tt.args...)
		if got != tt.want {
			t.Errorf("%s %s: expected %q, got %q", tt.tag, tt.key, tt.want, got)
		}
	}
}

func TestPrinterFallsBackToEnglish(t *testing.T) {
	p := NewPrinter(language.Japanese)
	if p.Tag() != language.English {
		t.Fatalf("Expected English fallback, got %s", p.Tag())
	}
	if got := p.T(KeyTitle); got != "Brain Trainer" {
		t.Errorf("Expected English title, got %q", got)
	}
}

func TestColorName(t *testing.T) {
	en := NewPrinter(language.English)
	sv := NewPrinter(language.Swedish)

	if got := en.ColorName("Röd"); got != "Red" {
		t.Errorf("Expected Red, got %q", got)
	}
	if got := sv.ColorName("Röd"); got != "Röd" {
		t.Errorf("Expected Röd, got %q", got)
	}
	if got := en.ColorName("Magenta"); got != "Magenta" {
		t.Errorf("Expected unknown color to pass through, got %q", got)
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
		ok   bool
	}{
		{"en", language.English, true},
		{"sv", language.Swedish, true},
		{"sv-SE", language.Swedish, true},
		{"", language.English, false},
		{"not a tag!", language.English, false},
	}

	for _, tt := range tests {
		got, ok := ParseTag(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseTag(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
