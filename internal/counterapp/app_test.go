package counterapp

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	backendtcell "github.com/odvcencio/furry-store/backend/tcell"
	"github.com/odvcencio/furry-store/runtime"
	"github.com/odvcencio/furry-store/store"
)

func TestNew_RequiresDependencies(t *testing.T) {
	be := backendtcell.NewWithScreen(tcell.NewSimulationScreen("UTF-8"))

	if _, _, err := New(Config{Store: store.New()}); !errors.Is(err, ErrNoBackend) {
		t.Fatalf("expected ErrNoBackend, got %v", err)
	}
	if _, _, err := New(Config{Backend: be}); !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}
}

func TestApp_RunsAgainstSimulationScreen(t *testing.T) {
	var out bytes.Buffer
	s := store.New()
	be := backendtcell.NewWithScreen(tcell.NewSimulationScreen("UTF-8"))
	app, view, err := New(Config{
		Backend: be,
		Store:   s,
		Palette: []string{"blue", "magenta"},
		Logger:  log.New(&out, "", 0),
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for _, r := range "++-c" {
		app.Post(runtime.KeyMsg{Key: tcell.KeyRune, Rune: r})
	}
	app.Post(runtime.KeyMsg{Key: tcell.KeyRune, Rune: 'q'})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := s.State().Snapshot(); got != (store.State{Counter: 1, ColorCode: "magenta"}) {
		t.Fatalf("unexpected state %+v", got)
	}
	if n := strings.Count(out.String(), "mutation id="); n != 4 {
		t.Fatalf("expected 4 logged mutations, got %d:\n%s", n, out.String())
	}
	if view.Subs.Len() != 0 {
		t.Fatalf("expected subscriptions released after run")
	}
}
