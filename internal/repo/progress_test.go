package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/roadmap-tracker/internal/model"
	"exusiai.dev/roadmap-tracker/internal/pkg/kvslot"
)

func TestProgressRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemory("test")
	r := NewProgress(slot)

	p, err := r.GetProgress(ctx)
	require.NoError(t, err)
	assert.Empty(t, p)

	saved := model.NewProgress().ToggleDay("Phase 1", 1, 0).SetWeek("Phase 2", 5, 7, true)
	require.NoError(t, r.SaveProgress(ctx, saved))

	loaded, err := r.GetProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	require.NoError(t, r.DeleteProgress(ctx))
	p, err = r.GetProgress(ctx)
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestProgressReadsStoredLayout(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemory("fswd_7mo_tracker_v1")
	require.NoError(t, slot.Put(ctx, []byte(`{"Phase 1":{"1":{"days":{"0":true,"1":true}}}}`)))

	p, err := NewProgress(slot).GetProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DaySet{0: true, 1: true}, p.Days("Phase 1", 1))
}

func TestProgressCorruptSlot(t *testing.T) {
	ctx := context.Background()
	slot := kvslot.NewMemory("test")
	require.NoError(t, slot.Put(ctx, []byte(`{"Phase 1": {`)))

	_, err := NewProgress(slot).GetProgress(ctx)
	assert.Error(t, err)
}
