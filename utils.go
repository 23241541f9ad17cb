package main

import (
	"fmt"
	"html"
	"os/exec"
	"runtime"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
)

// clipboardReader is swapped in tests.
var clipboardReader = readClipboardText

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// pasteHex reads the clipboard and returns the first color token in it,
// without the leading '#'. Bare tokens must be six digits so that words
// like "bad" are not taken for colors.
func pasteHex() (string, error) {
	text, err := clipboardReader()
	if err != nil {
		return "", fmt.Errorf("clipboard: %w", err)
	}
	for _, tok := range colorTokens(clipboardPlainText(text)) {
		if !strings.HasPrefix(tok, "#") && len(tok) != 6 {
			continue
		}
		if _, err := parseHex(tok); err == nil {
			return strings.ToLower(strings.TrimPrefix(tok, "#")), nil
		}
	}
	return "", fmt.Errorf("clipboard has no color")
}

// clipboardPlainText strips the markup rich-text editors put on the
// clipboard alongside the text.
func clipboardPlainText(text string) string {
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return ' '
		}
		return r
	}, text)
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = extractTextFromHTML(text)
	}
	return text
}

func colorTokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",;:\"'()", r)
	})
}

func isRTF(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "{\\rtf")
}

func isHTML(text string) bool {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "<") {
		return false
	}
	for _, tag := range []string{"<html", "<body", "<div", "<span", "<p", "<meta"} {
		if strings.Contains(t, tag) {
			return true
		}
	}
	return false
}

// extractTextFromHTML replaces every tag with a space and unescapes
// entities.
func extractTextFromHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String())
}

// stripRTF drops groups delimiters and control words. A control word ends
// at the first non-letter, non-digit rune; one trailing space belongs to it.
func stripRTF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '{' || r == '}':
		case r == '\\' && i+1 < len(runes) && strings.ContainsRune("\\{}", runes[i+1]):
			i++
			b.WriteRune(runes[i])
		case r == '\\':
			j := i + 1
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '-') {
				j++
			}
			if j < len(runes) && runes[j] == ' ' {
				j++
			}
			i = j - 1
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
