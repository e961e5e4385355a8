package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/odvcencio/furry-store/internal/config"
	"github.com/odvcencio/furry-store/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.DotEnvSwitch, "off")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInspect_JSON(t *testing.T) {
	out, err := execute(t, "inspect", "--actions", "inc,inc,inc dec,color=red")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var got struct {
		State          store.State `json:"state"`
		CounterSquared int         `json:"counterSquared"`
		LastAction     string      `json:"lastAction"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.State != (store.State{Counter: 2, ColorCode: "red"}) {
		t.Fatalf("unexpected state %+v", got.State)
	}
	if got.CounterSquared != 4 || got.LastAction != "setColorCode=red" {
		t.Fatalf("unexpected report %+v", got)
	}
}

func TestInspect_FormatFromEnv(t *testing.T) {
	t.Setenv("FURRY_STORE_INSPECT_FORMAT", "yaml")
	out, err := execute(t, "inspect")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out, "colorCode: blue") {
		t.Fatalf("expected yaml output, got %q", out)
	}
}

func TestInspect_FlagOverridesEnv(t *testing.T) {
	t.Setenv("FURRY_STORE_INSPECT_FORMAT", "yaml")
	out, err := execute(t, "inspect", "--format", "json")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.HasPrefix(out, "{") {
		t.Fatalf("expected json output, got %q", out)
	}
}

func TestInspect_UsesOwnConfig(t *testing.T) {
	t.Setenv("FURRY_STORE_INSPECT_FORMAT", "yaml")
	if out, err := execute(t, "inspect"); err != nil || !strings.Contains(out, "colorCode: blue") {
		t.Fatalf("expected yaml from the root command, got %q (%v)", out, err)
	}

	var out bytes.Buffer
	cmd := inspectCmd(&config.Config{InspectFormat: "json", InspectStyle: "monokai"})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.HasPrefix(out.String(), "{") {
		t.Fatalf("expected json from the command's own config, got %q", out.String())
	}
}

func TestInspect_Errors(t *testing.T) {
	if _, err := execute(t, "inspect", "--actions", "inc,jump"); !errors.Is(err, store.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if _, err := execute(t, "inspect", "--format", "toml"); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

func TestRoot_BadConfig(t *testing.T) {
	t.Setenv("FURRY_STORE_TICK_RATE", "-1s")
	if _, err := execute(t, "inspect"); err == nil {
		t.Fatalf("expected a negative tick rate to fail")
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := openLogger("")
	if err != nil || logger == nil {
		t.Fatalf("expected a discard logger, got %v", err)
	}
	closeLog()

	path := t.TempDir() + "/furrystore.log"
	logger, closeLog, err = openLogger(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Printf("hello")
	closeLog()

	if _, _, err := openLogger(t.TempDir() + "/missing/dir.log"); err == nil {
		t.Fatalf("expected an error for an unwritable path")
	}
}
