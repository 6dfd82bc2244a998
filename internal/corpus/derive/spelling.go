package derive

import "strings"

// The helpers below approximate English spelling changes at a morpheme
// boundary. They are deliberately simple and are not a dictionary check.

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func last(w string) byte {
	if w == "" {
		return 0
	}
	return w[len(w)-1]
}

// endsConsonantY reports "carry", "happy" but not "play".
func endsConsonantY(w string) bool {
	n := len(w)
	return n >= 2 && w[n-1] == 'y' && !isVowel(w[n-2])
}

// endsSilentE reports "love", "create" but not "agree".
func endsSilentE(w string) bool {
	return strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "ee")
}

// shouldDouble reports short consonant-vowel-consonant words whose final
// consonant doubles before a vowel suffix: "run" -> "runner".
func shouldDouble(w string) bool {
	n := len(w)
	if n < 3 || n > 4 {
		return false
	}
	c1, v, c2 := w[n-3], w[n-2], w[n-1]
	if isVowel(c1) || !isVowel(v) || isVowel(c2) {
		return false
	}
	return !strings.ContainsRune("wxy", rune(c2))
}

// dropE removes a silent final e before a vowel-initial suffix.
func dropE(w string) string {
	if endsSilentE(w) {
		return w[:len(w)-1]
	}
	return w
}

// yToI turns a consonant+y ending into i: "happy" -> "happi".
func yToI(w string) string {
	if endsConsonantY(w) {
		return w[:len(w)-1] + "i"
	}
	return w
}
