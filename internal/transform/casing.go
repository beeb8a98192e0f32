package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	capitalSigma = 'Σ'
	smallSigma   = 'σ'
	finalSigma   = 'ς'
)

// Upper maps s to upper case using full Unicode mappings, so "ß" becomes "SS".
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower maps s to lower case using full Unicode mappings.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Title capitalizes every word of s and lowercases the rest of each word.
//
// A word is a maximal run of cased characters. Anything else, including
// digits, apostrophes and combining marks, ends the word and is copied
// through unchanged, so "they're" becomes "They'Re" and "3rd" becomes "3Rd".
// A capital sigma inside a word becomes final sigma only when no cased
// character follows it across case-ignorable ones, so "ΑΣ'Α" is "Ασ'Α".
func Title(s string) string {
	var (
		b        strings.Builder
		title    = cases.Title(language.Und)
		lower    = cases.Lower(language.Und)
		prevCase bool
	)

	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		chunk := s[i : i+size]

		switch {
		case !isCased(r):
			b.WriteString(chunk)
		case !prevCase:
			b.WriteString(title.String(chunk))
		case r == capitalSigma:
			b.WriteRune(sigmaAt(s, i, size))
		default:
			b.WriteString(lower.String(chunk))
		}

		prevCase = isCased(r)
		i += size
	}

	return b.String()
}

// sigmaAt picks the lowercase form of the capital sigma at s[i:i+size]: final
// when a cased character precedes it and none follows, skipping
// case-ignorable characters on both sides.
func sigmaAt(s string, i, size int) rune {
	before := strings.TrimRightFunc(s[:i], isCaseIgnorable)
	if before == "" {
		return smallSigma
	}

	if r, _ := utf8.DecodeLastRuneInString(before); !isCased(r) {
		return smallSigma
	}

	after := strings.TrimLeftFunc(s[i+size:], isCaseIgnorable)
	if after == "" {
		return finalSigma
	}

	if r, _ := utf8.DecodeRuneInString(after); isCased(r) {
		return smallSigma
	}

	return finalSigma
}

// isCased reports whether r has case, i.e. is an upper, lower or titlecase
// letter or carries the Other_Uppercase/Other_Lowercase property.
func isCased(r rune) bool {
	return unicode.IsUpper(r) ||
		unicode.IsLower(r) ||
		unicode.IsTitle(r) ||
		unicode.Is(unicode.Other_Lowercase, r) ||
		unicode.Is(unicode.Other_Uppercase, r)
}

// midWord holds the Word_Break MidLetter, MidNumLet and Single_Quote
// characters, which are case-ignorable along with marks and modifiers.
var midWord = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0027, Hi: 0x0027, Stride: 1},
		{Lo: 0x002e, Hi: 0x002e, Stride: 1},
		{Lo: 0x003a, Hi: 0x003a, Stride: 1},
		{Lo: 0x00b7, Hi: 0x00b7, Stride: 1},
		{Lo: 0x0387, Hi: 0x0387, Stride: 1},
		{Lo: 0x055f, Hi: 0x055f, Stride: 1},
		{Lo: 0x05f4, Hi: 0x05f4, Stride: 1},
		{Lo: 0x2018, Hi: 0x2019, Stride: 1},
		{Lo: 0x2024, Hi: 0x2024, Stride: 1},
		{Lo: 0x2027, Hi: 0x2027, Stride: 1},
		{Lo: 0xfe13, Hi: 0xfe13, Stride: 1},
		{Lo: 0xfe52, Hi: 0xfe52, Stride: 1},
		{Lo: 0xfe55, Hi: 0xfe55, Stride: 1},
		{Lo: 0xff07, Hi: 0xff07, Stride: 1},
		{Lo: 0xff0e, Hi: 0xff0e, Stride: 1},
		{Lo: 0xff1a, Hi: 0xff1a, Stride: 1},
	},
	LatinOffset: 4,
}

func isCaseIgnorable(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk, midWord)
}
