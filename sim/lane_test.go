package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaneID_String(t *testing.T) {
	assert.Equal(t, "1", Lane1.String())
	assert.Equal(t, "2", Lane2.String())
	assert.True(t, Lane1.Valid())
	assert.True(t, Lane2.Valid())
	assert.False(t, LaneID(NumLanes).Valid())
	assert.False(t, NoLane.Valid())
	assert.Equal(t, "none", NoLane.String())
}

func TestLane_LoadUnload(t *testing.T) {
	// GIVEN an idle lane with one waiting job
	l := newLane(Lane2)
	l.WaitQ.Enqueue(Job{ID: 1})
	assert.True(t, l.NeedsStart())
	assert.Equal(t, 0, l.Occupancy())

	// WHEN the job is loaded into the slot
	j, _ := l.WaitQ.Dequeue()
	l.load(j)

	// THEN the lane is busy with occupancy 1
	assert.True(t, l.Busy())
	assert.False(t, l.NeedsStart())
	assert.Equal(t, 1, l.Occupancy())
	got, ok := l.InService()
	assert.True(t, ok)
	assert.Equal(t, 1, got.ID)

	// WHEN unloaded
	out := l.unload()
	assert.Equal(t, 1, out.ID)
	assert.False(t, l.Busy())
	_, ok = l.InService()
	assert.False(t, ok)
}

func TestLane_LoadWhileBusy_Panics(t *testing.T) {
	l := newLane(Lane1)
	l.load(Job{ID: 1})
	assert.Panics(t, func() { l.load(Job{ID: 2}) })
}

func TestLane_UnloadEmpty_Panics(t *testing.T) {
	l := newLane(Lane1)
	assert.Panics(t, func() { l.unload() })
}

func TestJob_Finished(t *testing.T) {
	assert.False(t, Job{RemainingService: 0.01}.Finished())
	assert.True(t, Job{RemainingService: 0}.Finished())
	assert.True(t, Job{RemainingService: -0.5}.Finished())
}
