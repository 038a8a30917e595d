package main

import (
	"embed"
	"io/fs"
)

//go:embed configs
var configFS embed.FS

// embeddedConfigs returns the bundled configs directory as the FS root
func embeddedConfigs() (fs.FS, error) {
	return fs.Sub(configFS, "configs")
}
