package expr_test

import (
	"testing"

	"github.com/dfgrep/dfgrep"
	"github.com/dfgrep/dfgrep/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *dfgrep.Schema {
	return dfgrep.NewSchema([]dfgrep.Column{
		{Name: "name", Type: dfgrep.TypeString},
		{Name: "city", Type: dfgrep.TypeString},
		{Name: "age", Type: dfgrep.TypeInt64},
	})
}

func row(name, city string, age int64) dfgrep.Row {
	return dfgrep.Row{dfgrep.NewString(name), dfgrep.NewString(city), dfgrep.NewInt64(age)}
}

func compile(t *testing.T, e expr.Expr) expr.Filter {
	f, err := expr.CompileFilter(testSchema(), e)
	require.NoError(t, err)
	return f
}

func TestLiteral(t *testing.T) {
	assert.True(t, compile(t, expr.Literal{B: true})(row("a", "b", 1)))
	assert.False(t, compile(t, expr.Literal{B: false})(row("a", "b", 1)))
}

func TestContainsLiteral(t *testing.T) {
	f := compile(t, expr.Contains{Col: "name", Pattern: "lic", Literal: true})
	assert.True(t, f(row("Alice", "", 0)))
	assert.False(t, f(row("LICE", "", 0)))
	assert.False(t, f(row("Bob", "", 0)))
	// Regexp metacharacters are opaque text in literal mode.
	f = compile(t, expr.Contains{Col: "name", Pattern: "a.c", Literal: true})
	assert.True(t, f(row("xa.cy", "", 0)))
	assert.False(t, f(row("abc", "", 0)))
}

func TestContainsLiteralCaseFold(t *testing.T) {
	f := compile(t, expr.Contains{Col: "name", Pattern: "LIC", Literal: true, CaseFold: true})
	assert.True(t, f(row("Alice", "", 0)))
	assert.True(t, f(row("ALICE", "", 0)))
	assert.False(t, f(row("Bob", "", 0)))
	// Fold window wider than the haystack.
	f = compile(t, expr.Contains{Col: "name", Pattern: "alice and bob", Literal: true, CaseFold: true})
	assert.False(t, f(row("alice", "", 0)))
}

func TestContainsRegexp(t *testing.T) {
	f := compile(t, expr.Contains{Col: "city", Pattern: "^Bos.*n$"})
	assert.True(t, f(row("", "Boston", 0)))
	assert.False(t, f(row("", "South Boston", 0)))
}

func TestContainsRegexpCaseFold(t *testing.T) {
	f := compile(t, expr.Contains{Col: "city", Pattern: "bos", CaseFold: true})
	assert.True(t, f(row("", "BOSTON", 0)))
}

func TestContainsBadRegexp(t *testing.T) {
	_, err := expr.CompileFilter(testSchema(), expr.Contains{Col: "city", Pattern: "("})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `pattern "("`)
}

func TestContainsNonStringColumn(t *testing.T) {
	// Non-string columns match against their text form.
	f := compile(t, expr.Contains{Col: "age", Pattern: "42", Literal: true})
	assert.True(t, f(row("", "", 42)))
	assert.True(t, f(row("", "", 423)))
	assert.False(t, f(row("", "", 17)))
}

func TestEquals(t *testing.T) {
	f := compile(t, expr.Equals{Col: "name", Pattern: "Bob"})
	assert.True(t, f(row("Bob", "", 0)))
	assert.False(t, f(row("Bobby", "", 0)))
	assert.False(t, f(row("bob", "", 0)))
	f = compile(t, expr.Equals{Col: "name", Pattern: "Bob", CaseFold: true})
	assert.True(t, f(row("bob", "", 0)))
}

func TestIsNull(t *testing.T) {
	f := compile(t, expr.IsNull{Col: "city"})
	withNull := dfgrep.Row{dfgrep.NewString("Eve"), dfgrep.Null(dfgrep.TypeString), dfgrep.NewInt64(1)}
	assert.True(t, f(withNull))
	assert.False(t, f(row("Eve", "", 1)))
}

func TestNullNeverMatchesText(t *testing.T) {
	withNull := dfgrep.Row{dfgrep.NewString("Eve"), dfgrep.Null(dfgrep.TypeString), dfgrep.NewInt64(1)}
	assert.False(t, compile(t, expr.Contains{Col: "city", Pattern: "", Literal: true})(withNull))
	assert.False(t, compile(t, expr.Contains{Col: "city", Pattern: ".*"})(withNull))
	assert.False(t, compile(t, expr.Equals{Col: "city", Pattern: ""})(withNull))
}

func TestConnectives(t *testing.T) {
	alice := expr.Contains{Col: "name", Pattern: "Alice", Literal: true}
	boston := expr.Contains{Col: "city", Pattern: "Boston", Literal: true}
	and := compile(t, expr.And{X: alice, Y: boston})
	assert.True(t, and(row("Alice", "Boston", 0)))
	assert.False(t, and(row("Alice", "Berlin", 0)))
	or := compile(t, expr.Or{X: alice, Y: boston})
	assert.True(t, or(row("Alice", "Berlin", 0)))
	assert.True(t, or(row("Bob", "Boston", 0)))
	assert.False(t, or(row("Bob", "Berlin", 0)))
	not := compile(t, expr.Not{X: alice})
	assert.False(t, not(row("Alice", "", 0)))
	assert.True(t, not(row("Bob", "", 0)))
}

func TestAnyOf(t *testing.T) {
	f := compile(t, expr.AnyOf{Exprs: []expr.Expr{
		expr.Equals{Col: "name", Pattern: "Alice"},
		expr.Equals{Col: "name", Pattern: "Bob"},
	}})
	assert.True(t, f(row("Alice", "", 0)))
	assert.True(t, f(row("Bob", "", 0)))
	assert.False(t, f(row("Eve", "", 0)))
}

func TestAnyOfEmptyIsFalse(t *testing.T) {
	f := compile(t, expr.AnyOf{})
	assert.False(t, f(row("Alice", "", 0)))
}

func TestUnknownColumn(t *testing.T) {
	_, err := expr.CompileFilter(testSchema(), expr.Contains{Col: "nope", Pattern: "x", Literal: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "nope"`)
}
