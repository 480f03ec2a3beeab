// Package buildinfo reports the scrollhead version.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/scrollhead/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/scrollhead/pkg/buildinfo.Commit=$(git rev-parse HEAD)"
//
// Binaries built with go install carry no ldflags; for those the module
// version and VCS stamp embedded by the toolchain are used instead.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the resolved build information.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Modified  bool // built from a dirty tree
}

// Read resolves build information, preferring ldflags over the embedded
// module data.
func Read() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if bi == nil {
		return info
	}
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String returns the formatted build information.
func (i Info) String() string {
	commit := i.Commit
	if i.Modified {
		commit += " (modified)"
	}
	s := fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, commit, i.Date)
	if i.GoVersion != "" {
		s += "\ngo: " + i.GoVersion
	}
	return s
}

// Template returns the version template string for cobra.
func Template() string {
	return "{{.Name}} " + Read().String() + "\n"
}
