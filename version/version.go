package version

import (
	"fmt"
	"runtime/debug"
)

// Overridden with -ldflags at release time. Development builds fall back to
// the module build info the Go toolchain embeds.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// GetFullVersion returns the string reported by --version: the release
// version, plus the short commit and build date when known.
func GetFullVersion() string {
	version := resolveVersion()
	commit := resolveCommit()
	if commit == "unknown" || len(commit) <= 7 {
		return version
	}
	if date := resolveDate(); date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", version, commit[:7], date)
	}
	return fmt.Sprintf("%s (%s)", version, commit[:7])
}

func resolveVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

func resolveCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	return buildSetting("vcs.revision")
}

func resolveDate() string {
	if Date != "unknown" && Date != "" {
		return Date
	}
	return buildSetting("vcs.time")
}

func buildSetting(key string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == key {
				return setting.Value
			}
		}
	}
	return "unknown"
}
