package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandCategory_String(t *testing.T) {
	tests := []struct {
		category CommandCategory
		expected string
	}{
		{CategoryUncategorized, "other commands"},
		{CategoryGeneral, "general"},
		{CategoryUtility, "utility"},
		{CategoryFun, "fun"},
		{CategoryEconomy, "economy"},
		{CategoryAdmin, "administration"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.category.String())
		})
	}
}

func TestCommandCategory_Unknown(t *testing.T) {
	require.Equal(t, "other commands", CommandCategory(99).String())
}

func TestCategoryOrder(t *testing.T) {
	order := CategoryOrder()
	require.Len(t, order, 6)
	require.Equal(t, CategoryGeneral, order[0])
	require.Equal(t, CategoryUncategorized, order[len(order)-1])
	require.Contains(t, order, CategoryAdmin)
}
