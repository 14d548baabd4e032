package clipboard

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	inner := errors.New("exec: \"xclip\": executable file not found in $PATH")
	err := &Error{
		Op:       OpWrite,
		Platform: "Linux",
		Guidance: "install xclip or xsel",
		Err:      inner,
	}

	msg := err.Error()
	for _, want := range []string{"write", "Linux", "xclip", "Solution: install xclip or xsel"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error message %q does not mention %q", msg, want)
		}
	}
	if !errors.Is(err, inner) {
		t.Fatalf("Error should wrap the underlying failure")
	}
}

func TestPlatformGuidanceLinuxMissingUtilities(t *testing.T) {
	got := platformGuidance("exec: \"xclip\": executable file not found")
	// Platform detection is environment-dependent; whatever environment the
	// test runs in, the guidance must be actionable.
	if got == "" {
		t.Fatalf("expected non-empty guidance")
	}
	if !strings.Contains(strings.ToLower(got), "clipboard") && !strings.Contains(got, "xclip") && !strings.Contains(got, "WSL") {
		t.Fatalf("guidance %q is not clipboard-related", got)
	}
}

func TestPlatformInfoNonEmpty(t *testing.T) {
	if platformInfo() == "" {
		t.Fatalf("platformInfo returned empty string")
	}
}
