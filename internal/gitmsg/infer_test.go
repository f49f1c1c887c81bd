package gitmsg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verup-dev/verup/internal/bump"
)

func writeMessage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write message file: %v", err)
	}
	return path
}

// TestInfer tests tag scanning over commit message content
func TestInfer(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bump.Kind
		matched bool
	}{
		{
			name:    "major tag",
			message: "rewrite storage layer [major]",
			want:    bump.Major,
			matched: true,
		},
		{
			name:    "minor tag",
			message: "add export command [minor]",
			want:    bump.Minor,
			matched: true,
		},
		{
			name:    "patch tag",
			message: "fix off-by-one [patch]",
			want:    bump.Patch,
			matched: true,
		},
		{
			name:    "preminor tag",
			message: "[preminor] stage the new parser",
			want:    bump.Preminor,
			matched: true,
		},
		{
			name:    "prepatch tag",
			message: "[prepatch] try the hotfix",
			want:    bump.Prepatch,
			matched: true,
		},
		{
			name:    "no-version tag",
			message: "docs only [no-version]",
			want:    bump.Skip,
			matched: true,
		},
		{
			name:    "uppercase tag matches after lowercasing",
			message: "breaking change [MAJOR]",
			want:    bump.Major,
			matched: true,
		},
		{
			name:    "priority order wins over message order",
			message: "[patch] then also [major] later in the message",
			want:    bump.Major,
			matched: true,
		},
		{
			name:    "no tags",
			message: "just a regular commit message",
			matched: false,
		},
		{
			name:    "unbracketed keyword ignored",
			message: "this major change needs no bump tag",
			matched: false,
		},
		{
			name:    "tag spanning lines",
			message: "line one\n\nfooter: [minor]\n",
			want:    bump.Minor,
			matched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := Infer(writeMessage(t, tt.message))
			if ok != tt.matched {
				t.Fatalf("Infer matched=%v, want %v", ok, tt.matched)
			}
			if tt.matched && kind != tt.want {
				t.Errorf("Infer kind=%v, want %v", kind, tt.want)
			}
		})
	}
}

// TestInferMissingFile tests that an unreadable file degrades to no inference
func TestInferMissingFile(t *testing.T) {
	_, ok := Infer(filepath.Join(t.TempDir(), "does-not-exist"))
	if ok {
		t.Error("Expected no inference for missing file")
	}
}
