package cv

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/changgoo/pub2tex/internal/latex"
	"github.com/changgoo/pub2tex/internal/reference"
)

// FormatAuthors renders the author list of a paper.
//
// When the subject is among the first maxAuthors authors, the shown
// authors are listed with the subject in bold and, if the first author is
// a student active that year, the first author wrapped in \student{}.
// Otherwise only the first author is printed, followed by
// "et al. (incl. <initials>)".
func (f *Formatter) FormatAuthors(p reference.Publication) string {
	if len(p.Authors) == 0 {
		return ""
	}

	n := f.maxAuthors
	if n > len(p.Authors) {
		n = len(p.Authors)
	}

	shown := make([]string, n)
	subjectShown := false
	for i, raw := range p.Authors[:n] {
		shown[i] = latex.ToLatexSafe(raw)
		if f.rules.Subject.In(shown[i]) {
			subjectShown = true
		}
	}

	if !subjectShown {
		return f.formatName(shown[0]) + latex.EtAl + "~(incl. " + latex.Bold(f.rules.Subject.Initials) + ")"
	}

	names := make([]string, n)
	for i, name := range shown {
		if f.rules.Subject.In(name) {
			names[i] = latex.Bold(f.rules.Subject.Display)
		} else {
			names[i] = f.formatName(name)
		}
	}

	if !f.rules.Subject.In(shown[0]) && f.rules.Students.Match(shown[0], p.Year.Int()) {
		names[0] = latex.Student(names[0])
	}

	tex := strings.Join(names, "; ")
	if n < len(p.Authors) {
		tex += latex.EtAl
	}
	return tex
}

// formatName abbreviates "Last, First Middle" to "Last, F. M.". Names
// without the separator are returned unchanged with a warning.
func (f *Formatter) formatName(name string) string {
	abbr, err := AbbreviateName(name)
	if err != nil {
		f.log.Warn().Str("author", name).Msg("couldn't format author name")
		return name
	}
	return abbr
}

// AbbreviateName turns "Last, First Middle" into "Last, F. M.".
func AbbreviateName(name string) (string, error) {
	parts := strings.Split(name, ", ")
	if len(parts) != 2 {
		return "", fmt.Errorf("name %q is not in \"Last, First\" form", name)
	}

	given := strings.Fields(parts[1])
	initials := make([]string, len(given))
	for i, g := range given {
		initials[i] = initial(g) + "."
	}
	return parts[0] + ", " + strings.Join(initials, " "), nil
}

// initial returns the first letter of a given name. A leading brace group
// such as {\'{E}} produced by transliteration counts as one letter.
func initial(s string) string {
	if s[0] == '{' {
		depth := 0
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return s[:i+1]
				}
			}
		}
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
