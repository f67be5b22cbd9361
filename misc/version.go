// Package misc provides program identity used across the tool: name, version
// and git hash. Values are baked in at build time and fall back to module
// build info when built without linker flags.
package misc

import (
	"runtime/debug"
	"strings"
)

var (
	appName = "formc"
	version = ""
	gitHash = ""
)

// GetAppName returns the short program name used for log files, temporary
// directories and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	if len(version) != 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) != 0 {
		return bi.Main.Version
	}
	return "unknown"
}

// GetGitHash returns git hash of the commit program was built from.
func GetGitHash() string {
	if len(gitHash) != 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		var rev, modified string
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				if s.Value == "true" {
					modified = "*"
				}
			}
		}
		if len(rev) != 0 {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return rev + modified
		}
	}
	return strings.Repeat("0", 12)
}
