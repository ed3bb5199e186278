// Package buildinfo contains build-time metadata separate from user configuration
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with
// -ldflags "-X github.com/feederwatch/dashboard/internal/buildinfo.version=v1.2.3 -X ...buildDate=2026-10-15"
var (
	version   = ""
	buildDate = ""
)

// Info holds build-time metadata that is not user-configurable.
type Info struct {
	// Version holds the Git version tag from build
	Version string
	// BuildDate is the time when the binary was built
	BuildDate string
	// GoVersion is the toolchain the binary was built with
	GoVersion string
	// Platform is GOOS/GOARCH
	Platform string
}

// Current returns the metadata of the running binary. Without linker flags
// the module version recorded by go install is used.
func Current() Info {
	v := version
	if v == "" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
	}
	return Info{
		Version:   orUnknown(v),
		BuildDate: orUnknown(buildDate),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// String formats the info for the version command.
func (i Info) String() string {
	return fmt.Sprintf("feederwatch %s (built %s, %s, %s)", i.Version, i.BuildDate, i.GoVersion, i.Platform)
}
