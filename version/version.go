package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X github.com/harlequix/hamming84/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
	OsArch    = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)
