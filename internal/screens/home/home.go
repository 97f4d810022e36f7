package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/kmensah/riddl/internal/api"
	"github.com/kmensah/riddl/internal/router"
	"github.com/kmensah/riddl/internal/screen"
	"github.com/kmensah/riddl/internal/screens/play"
	"github.com/kmensah/riddl/internal/ui/components"
	"github.com/kmensah/riddl/internal/ui/layout"
	"github.com/kmensah/riddl/internal/ui/theme"
)

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. Selecting "New game" pushes a play
// screen backed by the given client.
func New(client *api.Client) *HomeScreen {
	items := []components.MenuItem{
		{Label: "New game", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(client)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("R I D D L")
	subtitle := theme.Subtitle.Render("Riddles served fresh from the wire")

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(subtitle)
	b.WriteString("\n\n\n")
	b.WriteString(h.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}
