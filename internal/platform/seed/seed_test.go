package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWelcomeContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := `contents:
  - active: true
    title: "RetoDía"
    subtitle: "Cada día cuenta."
    challenge_title: "Pausa Consciente"
  - active: false
    title: "Otro reto"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	entries, err := LoadWelcomeContent(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].IsActive || entries[0].Title != "RetoDía" || entries[0].ChallengeTitle != "Pausa Consciente" {
		t.Fatalf("first entry mismatch: %+v", entries[0])
	}
	if entries[1].IsActive {
		t.Fatalf("second entry should be inactive")
	}
}

func TestLoadWelcomeContent_TitleRequired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte("contents:\n  - subtitle: x\n"), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if _, err := LoadWelcomeContent(path); err == nil {
		t.Fatalf("expected error for missing title")
	}
}

func TestLoadWelcomeContent_MissingFile(t *testing.T) {
	if _, err := LoadWelcomeContent("does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
