package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	props := Properties{"a": "X", "b": "7", "place": "COFFEE SHOP"}

	testCases := []struct {
		name string
		tmpl string
		want string
	}{
		{"two placeholders", "{a}-{b}", "X-7"},
		{"literal only", "no placeholders", "no placeholders"},
		{"placeholder amid text", "at {place}!", "at COFFEE SHOP!"},
		{"escaped braces", "{{a}} is {a}", "{a} is X"},
		{"empty template", "", ""},
		{"adjacent placeholders", "{a}{b}", "X7"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := renderTemplate(tc.tmpl, props)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRenderTemplate_Errors(t *testing.T) {
	props := Properties{"a": "X"}

	testCases := []struct {
		name string
		tmpl string
	}{
		{"undefined property", "{missing}"},
		{"unterminated placeholder", "start {a"},
		{"lone closing brace", "end}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := renderTemplate(tc.tmpl, props)
			assert.Error(t, err)
		})
	}
}

func TestRenderTemplate_EmptyValueSubstitutes(t *testing.T) {
	// An empty property value is defined and substitutes to nothing -
	// distinct from an undefined property, which errors.
	got, err := renderTemplate("[{id}]", Properties{"id": ""})
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}
