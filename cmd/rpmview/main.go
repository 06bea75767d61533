package main

import (
	"runtime"

	"github.com/bnema/rpmview/internal/cli/cmd"
	"github.com/bnema/rpmview/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
