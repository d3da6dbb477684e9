package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// Version information for the crust CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Info is the JSON shape of `crust version --format json`.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	Message   string `json:"git_message,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get collects the build-time variables.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		Message:   GitMessage,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Colored renders "major.minor.patch[-pre]" with each part in its own colour.
func Colored(v string, enabled bool) string {
	core, pre, hasPre := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	paint := func(c *color.Color, s string) string {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.Sprint(s)
	}
	out := paint(color.New(color.FgYellow, color.Bold), parts[0]) + "." +
		paint(color.New(color.FgGreen, color.Bold), parts[1]) + "." +
		paint(color.New(color.FgBlue, color.Bold), parts[2])
	if hasPre {
		out += "-" + pre
	}
	return out
}

// Pretty formats info for a terminal. hash and date add the optional fields,
// full adds everything including toolchain and platform.
func (info Info) Pretty(useColor, hash, date, full bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "crust %s", Colored(info.Version, useColor))
	if (hash || full) && info.GitCommit != "" {
		fmt.Fprintf(&b, " (%s)", info.GitCommit)
	}
	if (date || full) && info.BuildDate != "" {
		fmt.Fprintf(&b, " built %s", info.BuildDate)
	}
	if full {
		if info.Message != "" {
			fmt.Fprintf(&b, "\n  %s", info.Message)
		}
		fmt.Fprintf(&b, "\n  %s %s", info.GoVersion, info.Platform)
	}
	return b.String()
}
