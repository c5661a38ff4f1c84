package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAllTargetsInTopologicalOrder(t *testing.T) {
	result, err := NewService().List(t.Context(), ListRequest{Workspace: []string{writeWorkspace(t)}})
	require.NoError(t, err)
	if diff := cmp.Diff(workspaceOrder, result.Addresses); diff != "" {
		t.Fatalf("unexpected addresses (-want +got):\n%s", diff)
	}
}

func TestListIncludeTags(t *testing.T) {
	result, err := NewService().List(t.Context(), ListRequest{
		Workspace:   []string{writeWorkspace(t)},
		IncludeTags: []string{"release"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app:app"}, result.Addresses)
}

func TestListRootsOnly(t *testing.T) {
	result, err := NewService().List(t.Context(), ListRequest{
		Workspace: []string{writeWorkspace(t)},
		RootsOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app:tests"}, result.Addresses)
}

func TestListExcludeTags(t *testing.T) {
	result, err := NewService().List(t.Context(), ListRequest{
		Workspace:   []string{writeWorkspace(t)},
		ExcludeTags: []string{"third_*", "dev"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/lib:core", "src/lib:util", "src/app:app"}, result.Addresses)
}
