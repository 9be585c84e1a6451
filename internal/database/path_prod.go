//go:build prod

package database

import (
	"os"
	"path/filepath"
)

// DefaultPath is floatclock/floatclock.db under the user config dir, or the
// working directory when there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "floatclock.db"
	}
	return filepath.Join(dir, "floatclock", "floatclock.db")
}
