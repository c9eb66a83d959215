// Package tui presents the derived profile as an interactive Bubble
// Tea slide deck, one stat story per slide.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nightcatdev/aiwrap/internal/model"
	"github.com/nightcatdev/aiwrap/internal/tui/theme"
)

// Deck is the root Bubble Tea model for the slide show.
type Deck struct {
	profile model.DerivedProfile
	slide   int
	width   int
	height  int
	bar     progress.Model
}

// NewDeck creates the slide deck for a profile.
func NewDeck(profile model.DerivedProfile) Deck {
	bar := progress.New(
		progress.WithGradient(string(theme.Active.Accent), string(theme.Active.Magenta)),
		progress.WithoutPercentage(),
	)
	bar.Width = 40
	return Deck{profile: profile, bar: bar}
}

// Init implements tea.Model.
func (d Deck) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d Deck) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return d, tea.Quit
		case "right", "l", "enter", " ", "n", "j":
			if d.slide < slideCount-1 {
				d.slide++
			} else {
				return d, tea.Quit
			}
		case "left", "h", "p", "k":
			if d.slide > 0 {
				d.slide--
			}
		case "home", "g":
			d.slide = 0
		case "end", "G":
			d.slide = slideCount - 1
		}
	}
	return d, nil
}

// View implements tea.Model.
func (d Deck) View() string {
	t := theme.Active

	body := renderSlide(d.slide, d.profile)

	hint := lipgloss.NewStyle().Foreground(t.TextDim).
		Render("←/→ navigate · q quit")
	position := d.bar.ViewAs(float64(d.slide+1) / float64(slideCount))

	content := lipgloss.JoinVertical(lipgloss.Center, body, "", position, hint)

	if d.width > 0 && d.height > 0 {
		return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run shows the deck full-screen and blocks until the user exits.
func Run(profile model.DerivedProfile) error {
	p := tea.NewProgram(NewDeck(profile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
