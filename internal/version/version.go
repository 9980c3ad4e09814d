package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the sgstyle CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI. Держится без
	// escape-кодов: строка участвует в ключах кеша.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored returns Version with the major/minor/patch parts colored for
// terminal display. A string that does not look like semver is
// returned unchanged.
func Colored() string {
	parts := strings.SplitN(Version, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	patch, suffix, hasSuffix := strings.Cut(parts[2], "-")
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(patch)
	if hasSuffix {
		out += "-" + suffix
	}
	return out
}
