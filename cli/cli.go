// Package cli carries build metadata injected by release scripts, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/nimi/cli.Version=1.2.3' -X 'github.com/flarebyte/nimi/cli.Date=2026-10-18'"
package cli

var (
	Version string
	Date    string
)
