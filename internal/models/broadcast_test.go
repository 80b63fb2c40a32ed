package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alerting-gov/broadcast-api/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from models.BroadcastStatus
		to   models.BroadcastStatus
		want bool
	}{
		{models.BroadcastStatusDraft, models.BroadcastStatusPendingApproval, true},
		{models.BroadcastStatusPendingApproval, models.BroadcastStatusRejected, true},
		{models.BroadcastStatusPendingApproval, models.BroadcastStatusBroadcasting, true},
		{models.BroadcastStatusPendingApproval, models.BroadcastStatusCancelled, false},
		{models.BroadcastStatusRejected, models.BroadcastStatusPendingApproval, true},
		{models.BroadcastStatusBroadcasting, models.BroadcastStatusCancelled, true},
		{models.BroadcastStatusBroadcasting, models.BroadcastStatusCompleted, true},
		{models.BroadcastStatusCompleted, models.BroadcastStatusCancelled, false},
		{models.BroadcastStatusCancelled, models.BroadcastStatusBroadcasting, false},
		{models.BroadcastStatus("unknown"), models.BroadcastStatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, models.CanTransition(tt.from, tt.to))
		})
	}
}

func TestBroadcastAreas_RoundTrip(t *testing.T) {
	areas := models.BroadcastAreas{
		Names: []string{"River Steeping in Wainfleet All Saints"},
		SimplePolygons: [][][2]float64{
			{{53.10569, 0.24453}, {53.10593, 0.24430}, {53.10569, 0.24453}},
		},
	}

	value, err := areas.Value()
	require.NoError(t, err)

	var scanned models.BroadcastAreas
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, areas, scanned)
}

func TestBroadcastAreas_ScanNil(t *testing.T) {
	scanned := models.BroadcastAreas{Names: []string{"stale"}}
	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned.Names)
	assert.Empty(t, scanned.SimplePolygons)
}

func TestClampPriority(t *testing.T) {
	assert.Equal(t, 0, models.ClampPriority(-10))
	assert.Equal(t, 0, models.ClampPriority(0))
	assert.Equal(t, 35, models.ClampPriority(35))
	assert.Equal(t, 100, models.ClampPriority(100))
	assert.Equal(t, 100, models.ClampPriority(105))
}

func TestClampPriority_RepeatedShiftsStayPinned(t *testing.T) {
	reduced, increased := 50, 50
	for i := 0; i < 20; i++ {
		reduced = models.ClampPriority(reduced - 10)
		increased = models.ClampPriority(increased + 10)
	}
	assert.Equal(t, models.ProviderPriorityMin, reduced)
	assert.Equal(t, models.ProviderPriorityMax, increased)
}
