package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "policies/leave.pdf", []byte("leave"), "application/pdf"))
	require.NoError(t, s.Put(ctx, "policies/travel.pdf", []byte("travel"), "application/pdf"))
	require.NoError(t, s.Put(ctx, "cvs/p1/abc.pdf", []byte("cv"), "application/pdf"))

	got, err := s.Get(ctx, "policies/leave.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("leave"), got)

	list, err := s.List(ctx, "policies/")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "policies/leave.pdf", list[0].Key)
	assert.Equal(t, int64(6), list[1].Size)

	require.NoError(t, s.Delete(ctx, "policies/leave.pdf"))
	assert.ErrorIs(t, s.Delete(ctx, "policies/leave.pdf"), ErrObjectNotFound)
	_, err = s.Get(ctx, "policies/leave.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
