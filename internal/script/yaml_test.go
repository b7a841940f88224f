package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
initial_step: welcome
steps:
  - id: welcome
    message: |-
      Hello there.
    options:
      - id: go
        text: Go on
        next_step: exit
  - id: exit
    message: Goodbye.
    end_step: true
    options:
      - id: restart
        text: Return
        next_step: welcome
`

func TestParse(t *testing.T) {
	repo, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if repo.InitialStepID() != "welcome" {
		t.Errorf("InitialStepID() = %q, want welcome", repo.InitialStepID())
	}

	exit, ok := repo.Lookup("exit")
	if !ok {
		t.Fatal("exit step not found")
	}
	if !exit.IsEndStep {
		t.Error("exit should be an end step")
	}
	if len(exit.Options) != 1 || exit.Options[0].NextStep != "welcome" {
		t.Errorf("unexpected exit options: %+v", exit.Options)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("steps: [unclosed"))
	if err == nil || !strings.Contains(err.Error(), "parse script yaml") {
		t.Errorf("expected yaml parse error, got %v", err)
	}
}

func TestParse_FailsValidation(t *testing.T) {
	bad := `
initial_step: welcome
steps:
  - id: welcome
    message: Hi
    options:
      - id: go
        text: Go
        next_step: nowhere
`
	_, err := Parse([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "does not resolve") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns default", func(t *testing.T) {
		repo, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\") failed: %v", err)
		}
		if repo.InitialStepID() != "welcome" {
			t.Errorf("unexpected initial step %q", repo.InitialStepID())
		}
	})

	t.Run("loads from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "script.yaml")
		if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
			t.Fatal(err)
		}

		repo, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", path, err)
		}
		if _, ok := repo.Lookup("exit"); !ok {
			t.Error("exit step missing after file load")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})
}
