package commands

import (
	"testing"

	"github.com/adrg/xdg"
)

// setConfigHome points XDG_CONFIG_HOME at dir for the rest of the test.
func setConfigHome(t *testing.T, dir string) {
	t.Helper()
	// Registered first so it runs after the environment is restored.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
}
