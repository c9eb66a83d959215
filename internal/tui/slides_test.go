package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nightcatdev/aiwrap/internal/wrapped"
)

func TestRenderSlideAllIndexes(t *testing.T) {
	profile := wrapped.PlaceholderProfile(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))

	for i := 0; i < slideCount; i++ {
		if out := renderSlide(i, profile); strings.TrimSpace(out) == "" {
			t.Errorf("slide %d rendered empty", i)
		}
	}
}

func TestRenderVolumeShowsTotals(t *testing.T) {
	profile := wrapped.PlaceholderProfile(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))

	out := renderSlide(slideVolume, profile)
	if !strings.Contains(out, "847") {
		t.Errorf("volume slide missing conversation total:\n%s", out)
	}
	if !strings.Contains(out, "12,340") {
		t.Errorf("volume slide missing prompt total:\n%s", out)
	}
}

func TestDeckNavigation(t *testing.T) {
	profile := wrapped.PlaceholderProfile(time.Time{})
	deck := NewDeck(profile)

	next := tea.KeyMsg{Type: tea.KeyRight}
	m, _ := deck.Update(next)
	deck = m.(Deck)
	if deck.slide != 1 {
		t.Fatalf("slide after right = %d, want 1", deck.slide)
	}

	m, _ = deck.Update(tea.KeyMsg{Type: tea.KeyLeft})
	deck = m.(Deck)
	if deck.slide != 0 {
		t.Fatalf("slide after left = %d, want 0", deck.slide)
	}

	// Left at the first slide stays put
	m, _ = deck.Update(tea.KeyMsg{Type: tea.KeyLeft})
	deck = m.(Deck)
	if deck.slide != 0 {
		t.Fatalf("slide after left at start = %d, want 0", deck.slide)
	}

	// Advancing past the last slide quits
	for i := 0; i < slideCount-1; i++ {
		m, _ = deck.Update(next)
		deck = m.(Deck)
	}
	if deck.slide != slideCount-1 {
		t.Fatalf("slide = %d, want last (%d)", deck.slide, slideCount-1)
	}
	_, cmd := deck.Update(next)
	if cmd == nil {
		t.Fatal("advancing past the last slide returned no quit command")
	}
}
