package domain_test

import (
	"testing"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestSortBySize_DescendingOrder(t *testing.T) {
	modules := []domain.CodeModule{
		{Path: "a.dex", Size: 10 * 1024},
		{Path: "b.dex", Size: 50 * 1024},
		{Path: "c.dex", Size: 1 * 1024},
	}

	sorted := domain.SortBySize(modules)

	require.Equal(t, "b.dex", sorted[0].Path)
	require.Equal(t, "a.dex", sorted[1].Path)
	require.Equal(t, "c.dex", sorted[2].Path)
}

func TestSortBySize_StableOnEqualSizes(t *testing.T) {
	modules := []domain.CodeModule{
		{Path: "first.dex", Size: 4096},
		{Path: "second.dex", Size: 4096},
		{Path: "third.dex", Size: 4096},
	}

	sorted := domain.SortBySize(modules)

	// Equal-length modules must preserve original relative order.
	require.Equal(t, "first.dex", sorted[0].Path)
	require.Equal(t, "second.dex", sorted[1].Path)
	require.Equal(t, "third.dex", sorted[2].Path)
}

func TestSortBySize_DoesNotMutateInput(t *testing.T) {
	modules := []domain.CodeModule{
		{Path: "small.dex", Size: 1},
		{Path: "big.dex", Size: 2},
	}

	_ = domain.SortBySize(modules)

	require.Equal(t, "small.dex", modules[0].Path)
}

func TestSortBySize_Empty(t *testing.T) {
	require.Empty(t, domain.SortBySize(nil))
}
