// Package expr defines the backend-agnostic boolean expression algebra
// over rows of a schema, plus a reference compiler that turns an
// expression into a row predicate.  Backends either execute the
// compiled predicate row at a time or translate the AST into their own
// evaluation strategy (the arrow backend evaluates it column at a
// time).
package expr

// Expr is a boolean expression over the columns of one row.
// Expressions are immutable once built.
type Expr interface {
	isExpr()
}

// Contains matches when the named column's text contains Pattern.
// With Literal set, Pattern is opaque text and never interpreted as
// regexp syntax.  Without it, Pattern is a regexp and matching is
// unanchored containment.  CaseFold selects case-insensitive matching:
// fold-compare for literal mode, an inline (?i) flag for regexp mode.
type Contains struct {
	Col      string
	Pattern  string
	Literal  bool
	CaseFold bool
}

// Equals matches when the named column's text equals Pattern exactly,
// or case-foldedly when CaseFold is set.
type Equals struct {
	Col      string
	Pattern  string
	CaseFold bool
}

// IsNull matches when the named column's value is null.
type IsNull struct {
	Col string
}

// Not negates X.
type Not struct {
	X Expr
}

// And matches when both X and Y match.
type And struct {
	X, Y Expr
}

// Or matches when either X or Y matches.
type Or struct {
	X, Y Expr
}

// AnyOf is the n-ary disjunction of Exprs.  The empty disjunction is
// false.
type AnyOf struct {
	Exprs []Expr
}

// Literal is the constant predicate.
type Literal struct {
	B bool
}

func (Contains) isExpr() {}
func (Equals) isExpr()   {}
func (IsNull) isExpr()   {}
func (Not) isExpr()      {}
func (And) isExpr()      {}
func (Or) isExpr()       {}
func (AnyOf) isExpr()    {}
func (Literal) isExpr()  {}
