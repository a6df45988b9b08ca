package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellywell/washboard/internal/types"
)

func TestTargets(t *testing.T) {
	tests := []struct {
		name   string
		status types.Status
		want   []types.Status
	}{
		{"pending", types.PendingStatus, []types.Status{types.PendingStatus, types.InProgressStatus}},
		{"in progress", types.InProgressStatus, []types.Status{types.InProgressStatus, types.CompleteStatus}},
		{"complete", types.CompleteStatus, []types.Status{types.CompleteStatus}},
		{"unknown", types.Status("LOST"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Targets(tt.status))
		})
	}
}

func TestTargetsReturnsCopy(t *testing.T) {
	got := Targets(types.PendingStatus)
	got[0] = types.CompleteStatus
	assert.Equal(t, types.PendingStatus, Targets(types.PendingStatus)[0])
}

func TestNext(t *testing.T) {
	assert.Equal(t, types.InProgressStatus, Next(types.PendingStatus))
	assert.Equal(t, types.CompleteStatus, Next(types.InProgressStatus))
	assert.Equal(t, types.CompleteStatus, Next(types.CompleteStatus))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to types.Status
		want     bool
	}{
		{types.PendingStatus, types.PendingStatus, true},
		{types.PendingStatus, types.InProgressStatus, true},
		{types.PendingStatus, types.CompleteStatus, false},
		{types.InProgressStatus, types.PendingStatus, false},
		{types.InProgressStatus, types.CompleteStatus, true},
		{types.CompleteStatus, types.InProgressStatus, false},
		{types.CompleteStatus, types.CompleteStatus, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(types.CompleteStatus))
	assert.False(t, Terminal(types.PendingStatus))
	assert.False(t, Terminal(types.InProgressStatus))
}
