//go:build !(js && wasm)

package hostinfo

// UserAgent reports that no browser user-agent capability exists on
// native targets.
func UserAgent() (string, bool) {
	return "", false
}
