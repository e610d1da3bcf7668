package notfound

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/academy/internal/router"
)

func TestViewNamesMissingID(t *testing.T) {
	n := New("ghost")
	view := n.View(80, 20)
	if !strings.Contains(view, "Lesson not found") {
		t.Error("expected not-found heading")
	}
	if !strings.Contains(view, `"ghost"`) {
		t.Error("expected missing id in view")
	}
}

func TestEnterPops(t *testing.T) {
	n := New("ghost")
	_, cmd := n.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	n := New("ghost")
	if _, cmd := n.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("unexpected command for unrelated key")
	}
}
