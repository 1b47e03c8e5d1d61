package grep

import (
	"testing"

	"github.com/dfgrep/dfgrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var colSchema = dfgrep.NewSchema([]dfgrep.Column{
	{Name: "name", Type: dfgrep.TypeString},
	{Name: "kind", Type: dfgrep.TypeCategorical},
	{Name: "age", Type: dfgrep.TypeInt64},
	{Name: "when", Type: dfgrep.TypeTime},
})

func TestSelectColumnsDefault(t *testing.T) {
	cols, err := selectColumns(colSchema, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "kind"}, cols)
}

func TestSelectColumnsExplicit(t *testing.T) {
	cols, err := selectColumns(colSchema, []string{"kind", "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"kind", "name"}, cols)
}

func TestSelectColumnsMissing(t *testing.T) {
	_, err := selectColumns(colSchema, []string{"nmae"})
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "name", serr.Suggestion)
}

func TestSelectColumnsNoSuggestionWhenFar(t *testing.T) {
	_, err := selectColumns(colSchema, []string{"zzzzzzzzzz"})
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Empty(t, serr.Suggestion)
}

func TestSelectColumnsNotStringy(t *testing.T) {
	_, err := selectColumns(colSchema, []string{"age"})
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, serr.Error(), "int64")
}
