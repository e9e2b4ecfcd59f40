package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csomaati/expensecat/internal/rules"
)

func TestMatches_PrefixSemantics(t *testing.T) {
	conds := []rules.Condition{{"place": "^COFFEE"}}

	testCases := []struct {
		name  string
		place string
		want  bool
	}{
		{"prefix match", "COFFEE SHOP 12", true},
		{"exact match", "COFFEE", true},
		{"match must start at the beginning", "THE COFFEE SHOP", false},
		{"no match", "BAKERY", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := matches(conds, Properties{"place": tc.place})
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestMatches_UnanchoredPatternStillMatchesAtStartOnly(t *testing.T) {
	conds := []rules.Condition{{"place": "COFFEE"}}

	ok, err := matches(conds, Properties{"place": "THE COFFEE SHOP"})
	require.NoError(t, err)
	assert.False(t, ok, "pattern without ^ must still apply at the start, not anywhere")
}

func TestMatches_AbsentPropertyIsNonMatch(t *testing.T) {
	conds := []rules.Condition{{"place": ".*"}}

	ok, err := matches(conds, Properties{"amount": "10"})
	require.NoError(t, err)
	assert.False(t, ok, "condition on an absent property is not satisfied, not an error")
}

func TestMatches_AllConditionsMustHold(t *testing.T) {
	conds := []rules.Condition{
		{"place": "^COFFEE"},
		{"amount": "^-"},
	}
	props := Properties{"place": "COFFEE SHOP", "amount": "-1500"}

	ok, err := matches(conds, props)
	require.NoError(t, err)
	assert.True(t, ok)

	props["amount"] = "1500"
	ok, err = matches(conds, props)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatches_EmptyConditionListIsVacuouslyTrue(t *testing.T) {
	ok, err := matches(nil, Properties{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatches_MalformedConditionIsDefinitionError(t *testing.T) {
	testCases := []struct {
		name string
		cond rules.Condition
	}{
		{"two pairs", rules.Condition{"place": "a", "amount": "b"}},
		{"zero pairs", rules.Condition{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matches([]rules.Condition{tc.cond}, Properties{"place": "x"})
			require.Error(t, err)
			assert.True(t, rules.IsDefinitionError(err))
		})
	}
}

func TestMatches_InvalidPatternIsDefinitionError(t *testing.T) {
	_, err := matches([]rules.Condition{{"place": "("}}, Properties{"place": "x"})
	require.Error(t, err)
	assert.True(t, rules.IsDefinitionError(err))
}
