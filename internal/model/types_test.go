package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntSetScanValue(t *testing.T) {
	set := IntSet{1, 3, 5}
	raw, err := set.Value()
	require.NoError(t, err)
	assert.Equal(t, "1,3,5", raw)

	var parsed IntSet
	require.NoError(t, parsed.Scan("1,3,5"))
	assert.Equal(t, set, parsed)

	require.NoError(t, parsed.Scan(""))
	assert.Empty(t, parsed)

	assert.Error(t, parsed.Scan("1,x"))
}

func TestTemplateRoundTrip(t *testing.T) {
	tpl := Template{
		Title:     "Weekly quiz",
		Course:    "MATH 201",
		Tags:      StringList{"quiz"},
		TimeOfDay: "09:00",
	}
	raw, err := tpl.Value()
	require.NoError(t, err)

	var parsed Template
	require.NoError(t, parsed.Scan(raw))
	assert.Equal(t, tpl, parsed)
}
