package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruit.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Cleanup(func() { flagConfig = "" })

	tests := []struct {
		name string
		args []string
	}{
		{"list", []string{"--config", path, "list"}},
		{"play", []string{"--config", path, "play", "fruit"}},
		{"scores", []string{"--config", path, "--db", filepath.Join(t.TempDir(), "scores.db"), "scores"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()
			if err == nil {
				t.Fatal("Execute() error = nil, expected config error")
			}
			if !strings.Contains(err.Error(), "gravity") {
				t.Errorf("Execute() error = %v, expected it to name the bad field", err)
			}
		})
	}
}
