package settings

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform holds the truth values that conditionals are evaluated
// against.
type Platform struct {
	Windows bool
	OSX     bool
	Linux   bool
	POSIX   bool
	Win32   bool
	Xbox360 bool
}

// Conditional names, as written after the '$' of a conditional.
const (
	CondWindows = "WINDOWS"
	CondOSX     = "OSX"
	CondLinux   = "LINUX"
	CondPOSIX   = "POSIX"
	CondWin32   = "WIN32"
	CondXbox360 = "X360"
)

func Windows() Platform { return Platform{Windows: true, Win32: true} }
func OSX() Platform     { return Platform{OSX: true, POSIX: true} }
func Linux() Platform   { return Platform{Linux: true, POSIX: true} }

// HostPlatform returns the platform flags of the running process.
func HostPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		p := Platform{Windows: true}
		switch runtime.GOARCH {
		case "386", "amd64":
			p.Win32 = true
		}
		return p
	case "darwin", "ios":
		return OSX()
	default:
		return Linux()
	}
}

// ParsePlatform maps a name ("windows", "osx", "linux" or "host") to
// its flags.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(name) {
	case "windows", "win", "win32":
		return Windows(), nil
	case "osx", "darwin", "macos":
		return OSX(), nil
	case "linux":
		return Linux(), nil
	case "host":
		return HostPlatform(), nil
	}
	return Platform{}, fmt.Errorf("%w: unknown platform %q", ErrInvalid, name)
}

// Vars returns the conditional variables and their values.
func (p Platform) Vars() map[string]bool {
	return map[string]bool{
		CondWindows: p.Windows,
		CondOSX:     p.OSX,
		CondLinux:   p.Linux,
		CondPOSIX:   p.POSIX,
		CondWin32:   p.Win32,
		CondXbox360: p.Xbox360,
	}
}

func (p Platform) Validate() error {
	n := 0
	for _, b := range []bool{p.Windows, p.OSX, p.Linux} {
		if b {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("%w: at most one of windows, osx and linux may be set", ErrInvalid)
	}
	return nil
}

func (p Platform) String() string {
	var parts []string
	for _, name := range []string{CondWindows, CondOSX, CondLinux, CondPOSIX, CondWin32, CondXbox360} {
		if p.Vars()[name] {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
