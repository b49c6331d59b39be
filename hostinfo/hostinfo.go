// Package hostinfo classifies the runtime the benchmark is executing
// under. Detection is best effort and never fails the run: without a
// host-provided user-agent string it falls back to the Go runtime
// version.
package hostinfo

import (
	"runtime"
	"strings"
)

// Detect maps a user-agent string to a runtime label. ok reports
// whether a user-agent was available at all; when it is not, the label
// embeds the interpreter version instead.
//
// Match order matters: Chrome UAs also contain "Safari", and Edge UAs
// contain both "Chrome" and "Edg".
func Detect(ua string, ok bool) string {
	if !ok {
		return "Go " + runtime.Version()
	}

	switch {
	case strings.Contains(ua, "Chrome") && !strings.Contains(ua, "Edg"):
		return "Go/Chrome"
	case strings.Contains(ua, "Firefox"):
		return "Go/Firefox"
	case strings.Contains(ua, "Safari") && !strings.Contains(ua, "Chrome"):
		return "Go/Safari"
	case strings.Contains(ua, "Edg"):
		return "Go/Edge"
	default:
		return "Go/Browser"
	}
}
