package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusWord(t *testing.T) {
	assert.Equal(t, "new", StageNew.StatusWord())
	assert.Equal(t, "in-progress", StageInProgress.StatusWord())
	assert.Equal(t, "completed", StageRepaired.StatusWord())
	assert.Equal(t, "scrap", StageScrap.StatusWord())
}

func TestStageFromStatus(t *testing.T) {
	for status, want := range map[string]Stage{
		"new":         StageNew,
		"in-progress": StageInProgress,
		"in_progress": StageInProgress,
		"completed":   StageRepaired,
		"scrap":       StageScrap,
	} {
		stage, ok := StageFromStatus(status)
		require.True(t, ok, status)
		assert.Equal(t, want, stage)
	}

	_, ok := StageFromStatus("repaired")
	assert.False(t, ok, "the internal stage name is not a wire status")
	_, ok = StageFromStatus("cancelled")
	assert.False(t, ok)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StageNew.IsTerminal())
	assert.False(t, StageInProgress.IsTerminal())
	assert.True(t, StageRepaired.IsTerminal())
	assert.True(t, StageScrap.IsTerminal())
}

func TestForwardOnlyTransitions(t *testing.T) {
	assert.True(t, ForwardOnlyTransitions(StageNew, StageInProgress))
	assert.True(t, ForwardOnlyTransitions(StageInProgress, StageRepaired))
	assert.True(t, ForwardOnlyTransitions(StageInProgress, StageScrap))
	assert.True(t, ForwardOnlyTransitions(StageRepaired, StageInProgress), "re-opening is allowed")
	assert.True(t, ForwardOnlyTransitions(StageScrap, StageScrap), "self transition")

	assert.False(t, ForwardOnlyTransitions(StageScrap, StageNew))
	assert.False(t, ForwardOnlyTransitions(StageRepaired, StageNew))
	assert.False(t, ForwardOnlyTransitions(StageNew, StageRepaired))
}

func TestIsOverdue(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	overdue := MaintenanceRequest{Stage: StageNew, ScheduledDate: &past}
	assert.True(t, overdue.IsOverdue(now))

	scheduled := MaintenanceRequest{Stage: StageInProgress, ScheduledDate: &future}
	assert.False(t, scheduled.IsOverdue(now))

	unscheduled := MaintenanceRequest{Stage: StageNew}
	assert.False(t, unscheduled.IsOverdue(now))

	done := MaintenanceRequest{Stage: StageRepaired, ScheduledDate: &past}
	assert.False(t, done.IsOverdue(now), "terminal stages are never overdue")

	scrapped := MaintenanceRequest{Stage: StageScrap, ScheduledDate: &past}
	assert.False(t, scrapped.IsOverdue(now))
}
