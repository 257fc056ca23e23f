// Package sequence provides nucleotide sequence helpers: validation,
// DNA/RNA conversion, and the stock complement pairings. These are library
// conveniences; the assemblers accept any pairing function and default to
// identity.
package sequence

import (
	"regexp"
	"strings"
)

var validSeq = regexp.MustCompile(`^[aAcCgGtTuU]*$`)

// Valid reports whether s contains only nucleotide letters (AaCcGgTtUu).
func Valid(s string) bool {
	return validSeq.MatchString(s)
}

// ToDNA rewrites uracil as thymine.
func ToDNA(s string) string {
	return strings.ReplaceAll(s, "U", "T")
}

// ToRNA rewrites thymine as uracil.
func ToRNA(s string) string {
	return strings.ReplaceAll(s, "T", "U")
}

// Split breaks a sequence string into one rung name per base.
func Split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Reverse returns the sequence in opposite order (3′→5′ reading of a
// 5′→3′ input).
func Reverse(seq []string) []string {
	out := make([]string, len(seq))
	for i, s := range seq {
		out[len(seq)-1-i] = s
	}
	return out
}

// AddSuffix tags every rung name with a suffix, for libraries that carry
// several variants of each base.
func AddSuffix(seq []string, suffix string) []string {
	out := make([]string, len(seq))
	for i, s := range seq {
		out[i] = s + suffix
	}
	return out
}

// Complement maps every name in seq through pair.
func Complement(seq []string, pair func(string) string) []string {
	out := make([]string, len(seq))
	for i, s := range seq {
		out[i] = pair(s)
	}
	return out
}

// Identity is the trivial self-pairing.
func Identity(name string) string { return name }

// ComplementDNA is Watson-Crick pairing for DNA rung names.
func ComplementDNA(name string) string {
	switch name {
	case "A":
		return "T"
	case "T":
		return "A"
	case "G":
		return "C"
	case "C":
		return "G"
	}
	return name
}

// ComplementRNA is Watson-Crick pairing for RNA rung names.
func ComplementRNA(name string) string {
	switch name {
	case "A":
		return "U"
	case "U":
		return "A"
	case "G":
		return "C"
	case "C":
		return "G"
	}
	return name
}
