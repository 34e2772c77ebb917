// Package latex converts text to LaTeX-safe form and builds the markup
// macros used by the publication lists.
//
// The macro names (\student, \doiform, \arxiv, \href, the journal
// abbreviations) must match the ones defined by the CV document.
package latex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// accentMacros maps combining marks to the LaTeX accent command that
// produces them.
var accentMacros = map[rune]string{
	'\u0300': "\\`", // grave
	'\u0301': `\'`,  // acute
	'\u0302': `\^`,  // circumflex
	'\u0303': `\~`,  // tilde
	'\u0304': `\=`,  // macron
	'\u0306': `\u`,  // breve
	'\u0307': `\.`,  // dot above
	'\u0308': `\"`,  // diaeresis
	'\u030a': `\r`,  // ring above
	'\u030b': `\H`,  // double acute
	'\u030c': `\v`,  // caron
	'\u0323': `\d`,  // dot below
	'\u0327': `\c`,  // cedilla
	'\u0328': `\k`,  // ogonek
	'\u0331': `\b`,  // macron below
}

// symbols maps characters with no decomposition to their LaTeX form.
var symbols = map[rune]string{
	'ß':      `{\ss}`,
	'ø':      `{\o}`,
	'Ø':      `{\O}`,
	'æ':      `{\ae}`,
	'Æ':      `{\AE}`,
	'œ':      `{\oe}`,
	'Œ':      `{\OE}`,
	'ł':      `{\l}`,
	'Ł':      `{\L}`,
	'ı':      `{\i}`,
	'ȷ':      `{\j}`,
	'đ':      `{\dj}`,
	'Đ':      `{\DJ}`,
	'þ':      `{\th}`,
	'Þ':      `{\TH}`,
	'ð':      `{\dh}`,
	'Ð':      `{\DH}`,
	'\u00a0': `~`,
	'\u2009': `\,`,
	'–':      `--`,
	'—':      `---`,
	'‐':      `-`,
	'‘':      "`",
	'’':      `'`,
	'“':      "``",
	'”':      `''`,
	'…':      `\ldots{}`,
	'×':      `$\times$`,
	'±':      `$\pm$`,
	'°':      `$^\circ$`,
	'−':      `$-$`,
	'∼':      `$\sim$`,
	'≈':      `$\approx$`,
	'≤':      `$\leq$`,
	'≥':      `$\geq$`,
	'⊙':      `$\odot$`,
	'☉':      `$\odot$`,
	'Å':      `{\AA}`,
	'å':      `{\aa}`,
}

// greek maps Greek letters to math-mode macros.
var greek = map[rune]string{
	'α': "alpha", 'β': "beta", 'γ': "gamma", 'δ': "delta", 'ε': "epsilon",
	'ζ': "zeta", 'η': "eta", 'θ': "theta", 'ι': "iota", 'κ': "kappa",
	'λ': "lambda", 'μ': "mu", 'ν': "nu", 'ξ': "xi", 'π': "pi",
	'ρ': "rho", 'σ': "sigma", 'ς': "varsigma", 'τ': "tau", 'υ': "upsilon",
	'φ': "phi", 'χ': "chi", 'ψ': "psi", 'ω': "omega",
	'Γ': "Gamma", 'Δ': "Delta", 'Θ': "Theta", 'Λ': "Lambda", 'Ξ': "Xi",
	'Π': "Pi", 'Σ': "Sigma", 'Υ': "Upsilon", 'Φ': "Phi", 'Ψ': "Psi",
	'Ω': "Omega",
}

// ToLatexSafe transliterates UTF-8 text into ASCII LaTeX. Accented
// letters become accent macros ("é" -> {\'{e}}), special letters and
// typographic punctuation get their LaTeX spelling, and Greek letters are
// set in math mode. ASCII passes through untouched. Characters with no
// known spelling are kept as they are.
func ToLatexSafe(s string) string {
	if isASCII(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)
	for _, r := range norm.NFC.String(s) {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		b.WriteString(transliterateRune(r))
	}
	return b.String()
}

func transliterateRune(r rune) string {
	if sym, ok := symbols[r]; ok {
		return sym
	}
	if name, ok := greek[r]; ok {
		return `$\` + name + `$`
	}
	if accented, ok := accentedLetter(r); ok {
		return accented
	}
	return string(r)
}

// accentedLetter decomposes r into an ASCII letter plus combining marks
// and renders each mark as a nested accent macro.
func accentedLetter(r rune) (string, bool) {
	decomposed := []rune(norm.NFD.String(string(r)))
	if len(decomposed) < 2 || decomposed[0] >= utf8.RuneSelf || !unicode.IsLetter(decomposed[0]) {
		return "", false
	}

	marks := decomposed[1:]
	for _, m := range marks {
		if _, ok := accentMacros[m]; !ok {
			return "", false
		}
	}

	base := string(decomposed[0])
	// Accents above an i or j sit on the dotless form.
	if (base == "i" || base == "j") && isAbove(marks[0]) {
		base = `\` + base
	}
	for _, m := range marks {
		base = "{" + accentMacros[m] + "{" + base + "}}"
	}
	return base, true
}

func isAbove(mark rune) bool {
	switch mark {
	case '\u0323', '\u0327', '\u0328', '\u0331':
		return false
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
