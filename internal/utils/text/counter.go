// Package text provides small text measurement helpers shared by the
// validation layer.
package text

// CountRunes counts Unicode characters (runes) in the given text.
// Captions routinely contain emoji and non-Latin scripts, so limits are
// enforced on runes rather than bytes.
//
// Examples:
//
//	CountRunes("hello")    // 5
//	CountRunes("こんにちは")  // 5
//	CountRunes("Hello👋")   // 6
//	CountRunes("")         // 0
func CountRunes(text string) int {
	return len([]rune(text))
}
