package tui

import "unicode/utf8"

// pageSize is the default number of items fetched per API call.
const pageSize = 20

// maxInputLen is the maximum number of runes allowed in search and form inputs.
const maxInputLen = 200

// editRune processes a keystroke for inline text editing.
// Handles backspace (rune-aware) and single printable characters.
// Returns the text unchanged for non-printable keys (enter, esc, etc.).
// Input is clamped to maxInputLen runes.
func editRune(text string, key string) string {
	switch key {
	case "backspace":
		if len(text) > 0 {
			runes := []rune(text)
			return string(runes[:len(runes)-1])
		}
		return text
	case "space":
		key = " "
	}
	if utf8.RuneCountInString(key) == 1 {
		if utf8.RuneCountInString(text) >= maxInputLen {
			return text
		}
		return text + key
	}
	return text
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}

// renderInput renders an inline input with a cursor when focused and a
// placeholder when empty. mask hides the typed characters.
func renderInput(label, value, placeholder string, focused, mask bool) string {
	shown := value
	if mask {
		shown = ""
		for range utf8.RuneCountInString(value) {
			shown += "*"
		}
	}
	prompt := metaStyle.Render(label + ": ")
	if focused {
		prompt = inputPromptStyle.Render(label + ": ")
	}
	if shown == "" && !focused {
		return prompt + inputPlaceholderStyle.Render(placeholder)
	}
	if focused {
		return prompt + normalStyle.Render(shown) + accentStyle.Render("█")
	}
	return prompt + dimStyle.Render(shown)
}
