package textutil

import "unicode/utf8"

const (
	cjkFirst = '\u4e00'
	cjkLast  = '\u9fff'
)

// IsChinese reports whether r lies in the CJK Unified Ideographs block.
func IsChinese(r rune) bool {
	return r >= cjkFirst && r <= cjkLast
}

// IsChineseString reports whether s is exactly one rune and that rune is
// Chinese. Strings of any other length are reported as false.
func IsChineseString(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return IsChinese(r)
}

// containsChinese reports whether any rune of s is Chinese.
func containsChinese(s string) bool {
	for _, r := range s {
		if IsChinese(r) {
			return true
		}
	}
	return false
}
