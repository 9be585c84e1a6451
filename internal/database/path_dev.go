//go:build !prod

package database

// DefaultPath keeps development databases next to the binary's working directory.
func DefaultPath() string {
	return "floatclock.db"
}
