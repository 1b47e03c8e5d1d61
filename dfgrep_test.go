package dfgrep_test

import (
	"testing"
	"time"

	"github.com/dfgrep/dfgrep"
	"github.com/stretchr/testify/assert"
)

func TestValueText(t *testing.T) {
	when := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	cases := []struct {
		v    dfgrep.Value
		text string
	}{
		{dfgrep.NewString("hi"), "hi"},
		{dfgrep.NewCategorical("red"), "red"},
		{dfgrep.NewInt64(-42), "-42"},
		{dfgrep.NewFloat64(1.5), "1.5"},
		{dfgrep.NewBool(true), "true"},
		{dfgrep.NewTime(when), "2021-03-04T05:06:07Z"},
		{dfgrep.NewOther("[1 2 3]"), "[1 2 3]"},
		{dfgrep.Null(dfgrep.TypeString), ""},
		{dfgrep.Null(dfgrep.TypeInt64), ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.text, c.v.Text())
	}
}

func TestValueNull(t *testing.T) {
	v := dfgrep.Null(dfgrep.TypeString)
	assert.True(t, v.IsNull())
	assert.Equal(t, dfgrep.TypeString, v.Type())
	assert.False(t, dfgrep.NewString("").IsNull())
}

func TestIsStringy(t *testing.T) {
	assert.True(t, dfgrep.IsStringy(dfgrep.TypeString))
	assert.True(t, dfgrep.IsStringy(dfgrep.TypeCategorical))
	assert.False(t, dfgrep.IsStringy(dfgrep.TypeInt64))
	assert.False(t, dfgrep.IsStringy(dfgrep.TypeOther))
}

func TestSchemaLookup(t *testing.T) {
	schema := dfgrep.NewSchema([]dfgrep.Column{
		{Name: "a", Type: dfgrep.TypeString},
		{Name: "b", Type: dfgrep.TypeInt64},
	})
	i, ok := schema.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = schema.Lookup("c")
	assert.False(t, ok)
	assert.Equal(t, "{a:string,b:int64}", schema.String())
}

func TestSchemaEqual(t *testing.T) {
	a := dfgrep.NewSchema([]dfgrep.Column{{Name: "a", Type: dfgrep.TypeString}})
	b := dfgrep.NewSchema([]dfgrep.Column{{Name: "a", Type: dfgrep.TypeString}})
	c := dfgrep.NewSchema([]dfgrep.Column{{Name: "a", Type: dfgrep.TypeInt64}})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
