package service_test

import (
	"testing"
	"time"

	"github.com/neeleshs/listara/internal/server/service"
	"github.com/stretchr/testify/assert"
)

func TestSweepService(t *testing.T) {
	db, clk, cleanup := setup()
	defer cleanup()

	stale := createList(db, "stale")
	createItem(db, stale, "Milk")

	clk.Advance(2 * 24 * time.Hour)
	fresh := createList(db, "fresh")

	// stale is now 31 days old, fresh 29 days old.
	clk.Advance(29 * 24 * time.Hour)

	sweep := service.NewSweep(db, clk, retention)
	assert.NoError(t, sweep.Execute())
	assert.Equal(t, 1, sweep.Deleted)

	_, err := db.FindList(stale.ID)
	assert.True(t, db.IsNotFound(err))

	// Cascade reached the stale list's items.
	n, err := db.CountItemsByListID(stale.ID)
	assert.NoError(t, err)
	assert.Zero(t, n)

	_, err = db.FindList(fresh.ID)
	assert.NoError(t, err)

	// Redundant sweeps are harmless.
	sweep = service.NewSweep(db, clk, retention)
	assert.NoError(t, sweep.Execute())
	assert.Zero(t, sweep.Deleted)
}

func TestSweepServiceBoundary(t *testing.T) {
	db, clk, cleanup := setup()
	defer cleanup()

	list := createList(db, "boundary")

	// Exactly at the threshold is not strictly older: the list survives.
	clk.Advance(retention)
	sweep := service.NewSweep(db, clk, retention)
	assert.NoError(t, sweep.Execute())
	assert.Zero(t, sweep.Deleted)

	clk.Advance(time.Second)
	sweep = service.NewSweep(db, clk, retention)
	assert.NoError(t, sweep.Execute())
	assert.Equal(t, 1, sweep.Deleted)

	_, err := db.FindList(list.ID)
	assert.True(t, db.IsNotFound(err))
}
