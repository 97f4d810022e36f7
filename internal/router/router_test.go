package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kmensah/riddl/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "play"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "play" {
		t.Errorf("expected active 'play', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	r.Push(&stubScreen{title: "play"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after popping bottom screen, got %d", r.Depth())
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "play"}})
	if r.Active().Title() != "play" {
		t.Errorf("expected active 'play', got %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}
