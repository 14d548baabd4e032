package clipboard

import (
	"os"
	"runtime"
	"strings"
)

// platformInfo identifies the host environment in enough detail to produce a
// useful diagnostic: WSL is distinguished from native Linux, and Linux
// without a display server is called out as headless.
func platformInfo() string {
	switch runtime.GOOS {
	case "linux":
		if version, err := os.ReadFile("/proc/version"); err == nil {
			v := string(version)
			if strings.Contains(v, "Microsoft") || strings.Contains(v, "WSL") {
				return "WSL (Windows Subsystem for Linux)"
			}
		}
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return "Linux (headless)"
		}
		return "Linux"
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	default:
		return runtime.GOOS + " (unsupported)"
	}
}

// platformGuidance maps a platform failure message to remediation advice.
func platformGuidance(errMsg string) string {
	info := platformInfo()
	lower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(info, "WSL"):
		return "WSL clipboard access may be limited. Try: " +
			"1. Use WSL2 with Windows 10 build 19041+ " +
			"2. Install wslu package for clip.exe integration " +
			"3. Use Windows Terminal or enable clipboard sharing"
	case strings.Contains(info, "headless"):
		return "Clipboard access requires a display server. " +
			"On headless Linux systems, clipboard operations are not supported."
	case strings.Contains(info, "Linux"):
		if strings.Contains(lower, "xclip") || strings.Contains(lower, "xsel") {
			return "Missing clipboard utilities. Install with: " +
				"sudo apt-get install xclip xsel (Ubuntu/Debian) or " +
				"sudo yum install xclip xsel (RHEL/CentOS) or " +
				"sudo pacman -S xclip xsel (Arch)"
		}
		if strings.Contains(lower, "display") {
			return "No display available. Ensure DISPLAY environment variable is set " +
				"or run in a desktop environment."
		}
		return "Clipboard access failed. Verify xclip or xsel is installed and a display is available."
	case info == "macOS":
		return "macOS clipboard access failed. This may be due to: " +
			"1. Security permissions (check System Preferences > Privacy) " +
			"2. Running in a sandboxed environment " +
			"3. Insufficient user privileges"
	case info == "Windows":
		return "Windows clipboard access failed. This may be due to: " +
			"1. Another application holding clipboard lock " +
			"2. Insufficient user privileges " +
			"3. Antivirus software blocking access"
	}
	return "Platform-specific guidance not available for " + info
}
