package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the lumen CLI. Override with -ldflags "-X".
var (
	// Version is the semantic version. It is also part of every compile
	// cache key, so bumping it invalidates cached output.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
	metaColor  = color.New(color.Faint)
)

// Colored renders Version with one color per component. Pre-release and
// build suffixes are left plain.
func Colored() string {
	core, suffix := Version, ""
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core, suffix = core[:i], core[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	return majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2]) + suffix
}

// String is the full "lumen <version> (commit, date)" line.
func String(colored bool) string {
	v := Version
	if colored {
		v = Colored()
	}
	var meta []string
	if GitCommit != "" {
		meta = append(meta, "commit "+GitCommit)
	}
	if BuildDate != "" {
		meta = append(meta, "built "+BuildDate)
	}
	line := "lumen " + v
	if len(meta) > 0 {
		m := "(" + strings.Join(meta, ", ") + ")"
		if colored {
			m = metaColor.Sprint(m)
		}
		line += " " + m
	}
	return line
}
