package platform

import "runtime"

// Kind selects which command dialect is used to inspect and kill processes.
type Kind int

const (
	Linux Kind = iota
	MacOS
	Windows
)

func (k Kind) String() string {
	switch k {
	case Windows:
		return "Windows"
	case MacOS:
		return "Darwin"
	default:
		return "Linux"
	}
}

// Unix reports whether the kind uses signal-based termination (and so may
// need sudo to kill processes owned by other users).
func (k Kind) Unix() bool {
	return k != Windows
}

// FromGOOS maps a GOOS value to a Kind. Unrecognized systems (the BSDs,
// illumos, ...) get the Linux dialect and ok=false so callers can warn.
func FromGOOS(goos string) (kind Kind, ok bool) {
	switch goos {
	case "windows":
		return Windows, true
	case "darwin":
		return MacOS, true
	case "linux":
		return Linux, true
	default:
		return Linux, false
	}
}

// Detect returns the Kind of the running host.
func Detect() (Kind, bool) {
	return FromGOOS(runtime.GOOS)
}
