package tui

import (
	"strings"
	"testing"
)

func TestEditRune(t *testing.T) {
	tests := []struct {
		name  string
		start string
		key   string
		want  string
	}{
		{"append to empty", "", "a", "a"},
		{"append digit", "abc", "1", "abc1"},
		{"space key", "del", "space", "del "},
		{"backspace", "hello", "backspace", "hell"},
		{"backspace on empty", "", "backspace", ""},
		{"backspace multibyte", "hellé", "backspace", "hell"},
		{"enter ignored", "hello", "enter", "hello"},
		{"ctrl combo ignored", "hello", "ctrl+s", "hello"},
		{"tab ignored", "hello", "tab", "hello"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := editRune(tc.start, tc.key); got != tc.want {
				t.Errorf("editRune(%q, %q) = %q, want %q", tc.start, tc.key, got, tc.want)
			}
		})
	}
}

func TestEditRuneMaxInputLen(t *testing.T) {
	atLimit := strings.Repeat("a", maxInputLen)
	if got := editRune(atLimit, "b"); got != atLimit {
		t.Errorf("editRune at limit grew to %d runes", len([]rune(got)))
	}
	if got := editRune(atLimit, "backspace"); len(got) != maxInputLen-1 {
		t.Errorf("backspace at limit: len = %d", len(got))
	}
}

func TestTruncStr(t *testing.T) {
	tests := []struct {
		s      string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"", 5, ""},
		{"cafés are nice", 5, "café…"},
	}
	for _, tt := range tests {
		if got := truncStr(tt.s, tt.maxLen); got != tt.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
		}
	}
}

func TestTruncateToHeight(t *testing.T) {
	input := "line1\nline2\nline3\nline4\nline5\n"
	got := truncateToHeight(input, 3)
	if strings.Count(got, "\n") > 3 || strings.Contains(got, "line4") {
		t.Errorf("truncateToHeight(5 lines, 3) = %q", got)
	}
	if truncateToHeight(input, 0) != input {
		t.Error("maxLines 0 should return input unchanged")
	}
	if truncateToHeight(input, 10) != input {
		t.Error("short input should be unchanged")
	}
}

func TestRenderInputMasksPassword(t *testing.T) {
	got := renderInput("password", "secret", "", true, true)
	if strings.Contains(got, "secret") || !strings.Contains(got, "******") {
		t.Errorf("renderInput masked = %q", got)
	}
	if got := renderInput("user", "", "admin", false, false); !strings.Contains(got, "admin") {
		t.Errorf("placeholder missing: %q", got)
	}
}

func TestMoveCursor(t *testing.T) {
	if got := moveCursor(0, -1, 5); got != 0 {
		t.Errorf("moveCursor below zero = %d", got)
	}
	if got := moveCursor(4, 1, 5); got != 4 {
		t.Errorf("moveCursor past end = %d", got)
	}
	if got := moveCursor(0, 1, 0); got != 0 {
		t.Errorf("moveCursor on empty = %d", got)
	}
}

func TestHelpers(t *testing.T) {
	if orDash("  ") != "-" || orDash("ESP") != "ESP" {
		t.Error("orDash")
	}
	if hand("r") != "right-handed" || hand("U") != "U" {
		t.Error("hand")
	}
	if !strings.Contains(LevelStyle("G").Render("G"), "G") {
		t.Error("LevelStyle should render text")
	}
	if !strings.Contains(renderShimmerLogo(3), "C") {
		t.Error("logo should render letters")
	}
}
