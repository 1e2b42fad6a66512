// Package validation agrupa reglas de formato compartidas.
package validation

import (
	"regexp"
	"strings"
)

// Reglas de un token de scope OAuth (RFC 6749 §3.3, acotado):
// - empieza y termina con [A-Za-z0-9]
// - en el medio admite [A-Za-z0-9:_.-/]
// - largo 1..128
//
// Válidos: openid, offline_access, read:appointments, https://api.example.com/read
// Inválidos: ";hack", ":leader", "trailer:", "with\"quote"
var scopeTokenRe = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9:_\.\-/]{0,126}[A-Za-z0-9])?$`)

// ValidScopeToken indica si name es un token de scope aceptable.
func ValidScopeToken(name string) bool {
	return scopeTokenRe.MatchString(name)
}

// InvalidScopeTokens devuelve los tokens inválidos de un scope separado por espacios.
func InvalidScopeTokens(scope string) []string {
	var bad []string
	for _, tok := range strings.Fields(scope) {
		if !ValidScopeToken(tok) {
			bad = append(bad, tok)
		}
	}
	return bad
}
