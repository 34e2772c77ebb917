package latex

import (
	"fmt"
	"strings"
)

// EtAl is appended to truncated author lists.
const EtAl = `~\textit{et al.}`

// StudentMacro is the command that marks a supervised student's name.
const StudentMacro = `\student`

// Bold wraps s in \textbf.
func Bold(s string) string {
	return `\textbf{` + s + `}`
}

// Italic wraps s in \textit.
func Italic(s string) string {
	return `\textit{` + s + `}`
}

// Student wraps s in the student-emphasis macro.
func Student(s string) string {
	return StudentMacro + "{" + s + "}"
}

// HasStudent reports whether s contains student-emphasis markup.
func HasStudent(s string) bool {
	return strings.Contains(s, StudentMacro+"{")
}

// DOIForm links text to a DOI.
func DOIForm(doi, text string) string {
	return fmt.Sprintf(`\doiform{%s}{%s}`, doi, text)
}

// ArXiv renders an arXiv identifier.
func ArXiv(id string) string {
	return `\arxiv{` + id + `}`
}

// Href renders a hyperlink.
func Href(url, text string) string {
	return fmt.Sprintf(`\href{%s}{%s}`, url, text)
}

// Subscripts rewrites ADS <SUB>...</SUB> markers as math-mode subscripts.
func Subscripts(s string) string {
	if !strings.Contains(s, "<SUB>") {
		return s
	}
	return strings.NewReplacer("<SUB>", "${}_{", "</SUB>", "}$").Replace(s)
}

// Item prefixes an unnumbered list item.
func Item(entry string) string {
	return `\item ` + entry
}

// NumberedItem prefixes a list item carrying an explicit number.
func NumberedItem(n int, entry string) string {
	return fmt.Sprintf(`\item[{%d.}]`, n) + entry
}
