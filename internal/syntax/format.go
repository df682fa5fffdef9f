package syntax

import "github.com/lgbarn/boardalgebra/internal/rule"

// Print renders r in the canonical rule-expression text form — the
// parser's inverse on canonical inputs.
func Print(r rule.Rule) string {
	return r.String()
}
