package lesson

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/academy/internal/catalog"
	"github.com/abhisek/academy/internal/router"
	"github.com/abhisek/academy/internal/screens/notfound"
	playgroundscreen "github.com/abhisek/academy/internal/screens/playground"
	"github.com/abhisek/academy/internal/store"
)

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testStore() *store.Store {
	long := "# Long\n" + strings.Repeat("line of text\n", 60)
	cat := catalog.New([]catalog.Category{
		{ID: "basics", Name: "Basics", Icon: "📘", Lessons: []catalog.Lesson{
			{ID: "intro", Title: "Intro", Description: "First steps", Difficulty: catalog.DifficultyBeginner,
				Category: "basics", Content: "# Intro\nHello **world**\n- one\n- two", CodeExample: "const x = 1;"},
			{ID: "long", Title: "Long", Difficulty: catalog.DifficultyAdvanced, Category: "basics", Content: long},
		}},
	})
	return store.New(cat, nil)
}

func TestOpenUnknownID(t *testing.T) {
	s := Open(testStore(), nil, "missing")
	if _, ok := s.(*notfound.NotFoundScreen); !ok {
		t.Fatalf("expected not-found screen, got %T", s)
	}
}

func TestOpenKnownID(t *testing.T) {
	s := Open(testStore(), nil, "intro")
	if s.Title() != "Intro" {
		t.Errorf("expected title Intro, got %q", s.Title())
	}
}

func TestViewRendersContent(t *testing.T) {
	s := Open(testStore(), nil, "intro")
	view := s.View(100, 40)

	for _, want := range []string{"Intro", "[Beginner]", "Basics", "First steps", "world", "•", "Code Example", "const x = 1;"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "**") || strings.Contains(view, "<h1>") {
		t.Error("raw markup should not leak into the terminal view")
	}
	if strings.Contains(view, "Completed") {
		t.Error("lesson should not be completed yet")
	}
}

func TestCompleteAndIncompleteKeys(t *testing.T) {
	st := testStore()
	s := Open(st, nil, "intro")

	s.Update(keyRune('c'))
	if !st.IsCompleted("intro") {
		t.Fatal("c should mark the lesson complete")
	}
	if !strings.Contains(s.View(100, 40), "✓ Completed") {
		t.Error("view should show the completed badge")
	}
	if st.Progress().Percent != 50 {
		t.Errorf("expected 50%% progress, got %d", st.Progress().Percent)
	}

	s.Update(keyRune('u'))
	if st.IsCompleted("intro") {
		t.Error("u should mark the lesson incomplete")
	}
}

func TestKeyHintsFollowCompletion(t *testing.T) {
	st := testStore()
	d := New(st, nil, mustLesson(t, st, "intro"))

	if d.KeyHints()[1].Key != "c" {
		t.Error("expected complete hint before completion")
	}
	st.MarkComplete("intro")
	if d.KeyHints()[1].Key != "u" {
		t.Error("expected incomplete hint after completion")
	}
}

func TestPlaygroundKeyPushes(t *testing.T) {
	s := Open(testStore(), nil, "intro")
	_, cmd := s.Update(keyRune('p'))
	if cmd == nil {
		t.Fatal("expected a command for p")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*playgroundscreen.PlaygroundScreen); !ok {
		t.Errorf("expected playground screen, got %T", push.Screen)
	}
}

func TestScrollClamps(t *testing.T) {
	st := testStore()
	d := New(st, nil, mustLesson(t, st, "long"))
	d.View(100, 20)

	if d.maxScroll == 0 {
		t.Fatal("long lesson should be scrollable")
	}

	d.Update(keyRune('G'))
	if d.scrollOffset != d.maxScroll {
		t.Errorf("expected offset at bottom %d, got %d", d.maxScroll, d.scrollOffset)
	}
	d.Update(keyRune('j'))
	if d.scrollOffset != d.maxScroll {
		t.Error("scrolling past the end should clamp")
	}

	d.Update(keyRune('g'))
	d.Update(keyRune('k'))
	if d.scrollOffset != 0 {
		t.Errorf("scrolling above the top should clamp, got %d", d.scrollOffset)
	}
}

func TestQuitPops(t *testing.T) {
	s := Open(testStore(), nil, "intro")
	_, cmd := s.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected a command for q")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func mustLesson(t *testing.T, st *store.Store, id string) catalog.Lesson {
	t.Helper()
	l, ok := st.LessonByID(id)
	if !ok {
		t.Fatalf("lesson %q missing", id)
	}
	return l
}
