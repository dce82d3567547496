package cmd

import "strings"

// shellQuote quotes an argument for a remote command line. Arguments made up
// entirely of characters that never need quoting pass through unchanged;
// anything else is single-quoted with the standard `'\''` escape for
// embedded single quotes.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	plain := true
	for _, r := range s {
		if !safeRune(r) {
			plain = false
			break
		}
	}
	if plain {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func safeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '-', '_', '.', '/', '@', ':', ',', '+', '=':
		return true
	}
	return false
}
