package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theagenttimes/tat-mcp-server/models"
)

func comment(id, parent string) models.Comment {
	return models.Comment{ID: id, ParentID: parent, Body: "body of " + id}
}

func TestBuildThreads_FlattensDeepChains(t *testing.T) {
	// C replies to B, B replies to A. Both land flat under A.
	threads := BuildThreads([]models.Comment{
		comment("c_a", ""),
		comment("c_b", "c_a"),
		comment("c_c", "c_b"),
	})

	require.Len(t, threads, 1)
	assert.Equal(t, "c_a", threads[0].ID)
	require.Len(t, threads[0].Replies, 2)
	assert.Equal(t, "c_b", threads[0].Replies[0].ID)
	assert.Equal(t, "c_c", threads[0].Replies[1].ID)
}

func TestBuildThreads_MultipleRootsKeepInputOrder(t *testing.T) {
	threads := BuildThreads([]models.Comment{
		comment("c_r1", ""),
		comment("c_r2", ""),
		comment("c_x", "c_r2"),
	})

	require.Len(t, threads, 2)
	assert.Equal(t, "c_r1", threads[0].ID)
	assert.Empty(t, threads[0].Replies)
	assert.Equal(t, "c_r2", threads[1].ID)
	require.Len(t, threads[1].Replies, 1)
	assert.Equal(t, "c_x", threads[1].Replies[0].ID)
}

func TestBuildThreads_DropsOrphans(t *testing.T) {
	threads := BuildThreads([]models.Comment{
		comment("c_root", ""),
		comment("c_orphan", "c_missing"),
	})

	require.Len(t, threads, 1)
	assert.Empty(t, threads[0].Replies)
}

func TestBuildThreads_Empty(t *testing.T) {
	assert.Empty(t, BuildThreads(nil))
}
