// Package misc holds build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// set with -ldflags "-X bdotmerge/misc.version=... -X bdotmerge/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
	appName = ""
)

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name derived from executable unless it was set
// at build time.
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}
