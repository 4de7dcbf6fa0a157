package interp

import (
	diag "github.com/loxi-lang/loxi/internal/errors"
	"github.com/loxi-lang/loxi/internal/lexer"
)

// newRuntimeError builds a *diag.RuntimeError positioned at tok. It
// exists purely to avoid every call site spelling out the imported
// package alias.
func newRuntimeError(tok lexer.Token, format string, args ...any) error {
	return diag.NewRuntimeError(tok, format, args...)
}
