// Package numbering produces the human-readable reclamo identifiers printed
// on paperwork, in the form Línea{linea}-{COD}-{secuencia}.
package numbering

import "fmt"

// categoryCodes maps every known complaint category to its 3-letter code.
var categoryCodes = map[string]string{
	"Condiciones de trabajo": "CON",
	"Faltante de materiales o elementos de seguridad": "MAT",
	"Higiene y salubridad":               "HIG",
	"Seguridad y prevención":             "SEG",
	"Personal y recursos humanos":        "PER",
	"Conflictos o situaciones laborales": "LAB",
	"Otros reclamos gremiales":           "OTR",
}

const fallbackCode = "OTR"

// CategoryCode returns the 3-letter code for a category, falling back to OTR
// for anything unrecognized.
func CategoryCode(categoria string) string {
	if code, ok := categoryCodes[categoria]; ok {
		return code
	}
	return fallbackCode
}

// Generate formats the reclamo number for the given line, category and
// sequence. The sequence is supplied by the caller as one more than the count
// of existing reclamos for the same (linea, categoria); two concurrent
// creations may race to the same value, which the unique index on the stored
// number turns into an insert conflict.
func Generate(linea, categoria string, secuencia int) string {
	return fmt.Sprintf("Línea%s-%s-%04d", linea, CategoryCode(categoria), secuencia)
}
