package commands

import "testing"

func TestMCPCommandRegistered(t *testing.T) {
	c, _, err := rootCmd.Find([]string{"mcp", "serve"})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if c != mcpServeCmd {
		t.Errorf("Find() = %s, want mcp serve", c.CommandPath())
	}
	if c.RunE == nil {
		t.Error("mcp serve has no RunE")
	}
}
