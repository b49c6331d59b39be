//go:build js && wasm

package hostinfo

import "syscall/js"

// UserAgent reads navigator.userAgent from the embedding page. Any
// lookup failure reports absence rather than propagating.
func UserAgent() (ua string, ok bool) {
	defer func() {
		if recover() != nil {
			ua, ok = "", false
		}
	}()

	nav := js.Global().Get("navigator")
	if !nav.Truthy() {
		return "", false
	}
	v := nav.Get("userAgent")
	if v.Type() != js.TypeString {
		return "", false
	}
	return v.String(), true
}
