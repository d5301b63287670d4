// Package normalize unifica textos antes de compararlos contra constraints únicos
// (correo por empresa, nombre de proceso por empresa).
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Email recorta espacios, compone a NFC y pasa a minúsculas.
// cases.Caser no es seguro entre goroutines, por eso se crea en cada llamada.
func Email(s string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(s)))
}

// Name recorta espacios y compone a NFC; conserva mayúsculas.
// "José" escrito con acento combinado y precompuesto queda igual.
func Name(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
