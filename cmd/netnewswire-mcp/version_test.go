// ABOUTME: Tests for version command
// ABOUTME: Verifies version information display

package main

import (
	"strings"
	"testing"
)

func TestVersionVariables(t *testing.T) {
	if Version == "" {
		t.Error("expected Version to be set")
	}
	if Commit == "" {
		t.Error("expected Commit to be set")
	}
	if BuildDate == "" {
		t.Error("expected BuildDate to be set")
	}
}

func TestVersionCommandUse(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("expected Use to be 'version', got %q", versionCmd.Use)
	}
}

func TestVersionSkipsAccountDiscovery(t *testing.T) {
	// No accounts directory exists here; version must still succeed.
	t.Setenv("NNW_MCP_ACCOUNTS_DIR", t.TempDir()+"/missing")

	stdout, _, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(stdout, "netnewswire-mcp "+Version+"\n") {
		t.Errorf("unexpected version output %q", stdout)
	}
}
