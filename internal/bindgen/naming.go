package bindgen

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms are rendered in upper case when they form a whole word.
var initialisms = map[string]bool{
	"AI":   true,
	"API":  true,
	"HQ":   true,
	"HTML": true,
	"ID":   true,
	"JSON": true,
	"LOT":  true,
	"NPC":  true,
	"UI":   true,
	"UID":  true,
	"URL":  true,
	"XML":  true,
}

// rowMembers are the names a generated row type already has through its
// embedded typed.Row. Accessors with these names get a trailing underscore.
var rowMembers = map[string]bool{
	"Row":        true,
	"Raw":        true,
	"Table":      true,
	"Key":        true,
	"Field":      true,
	"Record":     true,
	"Int32":      true,
	"OptInt32":   true,
	"Float32":    true,
	"OptFloat32": true,
	"Text":       true,
	"OptText":    true,
	"Bool":       true,
	"OptBool":    true,
	"Int64":      true,
	"OptInt64":   true,
	"VarText":    true,
	"OptVarText": true,
	"Nothing":    true,
	"OptNothing": true,
}

// databaseMembers are the methods of the generated Database type. Table
// fields with these names get a trailing underscore.
var databaseMembers = map[string]bool{
	"Views": true,
	"View":  true,
}

// tableSuffixes are appended to a table name for its generated types and
// functions. Column constants ending in one of them get a trailing
// underscore.
var tableSuffixes = map[string]bool{
	"Column":  true,
	"Columns": true,
	"Table":   true,
	"Row":     true,
}

// Words splits a name at separators, lower-to-upper transitions and the end
// of upper-case runs. A plural "s" after an upper-case run stays with it, so
// "itemIDs" splits into "item" and "IDs".
func Words(s string) []string {
	rs := []rune(s)
	var words []string
	start := -1
	flush := func(end int) {
		if start >= 0 {
			words = append(words, string(rs[start:end]))
			start = -1
		}
	}

	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := rs[i-1]
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush(i)
			start = i
		case unicode.IsUpper(r) && unicode.IsUpper(prev) &&
			i+1 < len(rs) && unicode.IsLower(rs[i+1]) && !pluralRun(rs, i):
			flush(i)
			start = i
		}
	}
	flush(len(rs))
	return words
}

func pluralRun(rs []rune, i int) bool {
	return rs[i+1] == 's' && (i+2 == len(rs) || !unicode.IsLower(rs[i+2]))
}

func renderWord(w string) string {
	upper := strings.ToUpper(w)
	if initialisms[upper] {
		return upper
	}
	if n := len(w); n > 2 && w[n-1] == 's' && initialisms[upper[:n-1]] {
		return upper[:n-1] + "s"
	}
	return cases.Title(language.Und, cases.NoLower).String(w)
}

// Pascal converts a schema name into an exported Go identifier.
func Pascal(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(renderWord(w))
	}
	return leadingLetter(b.String())
}

// Camel converts a schema name into an unexported Go identifier.
func Camel(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return "x"
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(renderWord(w))
	}
	name := b.String()
	if unicode.IsDigit([]rune(name)[0]) {
		name = "x" + name
	}
	return escape(name, nil)
}

func leadingLetter(name string) string {
	if name == "" {
		return "X"
	}
	if unicode.IsDigit([]rune(name)[0]) {
		return "X" + name
	}
	return name
}

// escape appends an underscore to names that are Go keywords or in reserved.
func escape(name string, reserved map[string]bool) string {
	if token.IsKeyword(name) || reserved[name] {
		return name + "_"
	}
	return name
}

// ConstantName is the column identifier constant of column in the table
// with Go name base.
func ConstantName(base, column string) string {
	return base + escape(Pascal(column), tableSuffixes)
}

// FieldName is the Database field holding the table with Go name base.
func FieldName(base string) string {
	return escape(base, databaseMembers)
}

// AccessorName is the row method name of a column.
func AccessorName(column string) string {
	return escape(Pascal(column), rowMembers)
}
