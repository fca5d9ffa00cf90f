package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Services are constructed with a nil bus in tests; Notify must tolerate
// every missing collaborator.
func TestChangeBusNilSafe(t *testing.T) {
	var nilBus *ChangeBus
	assert.NotPanics(t, func() {
		nilBus.Notify(TopicRecipes, "created", nil)
	})

	bus := NewChangeBus(nil, nil)
	assert.NotPanics(t, func() {
		bus.Notify(TopicMealLogs, "deleted", map[string]uint{"id": 1})
	})
}

func TestHubClientCountEmpty(t *testing.T) {
	hub := NewRealtimeHub()
	assert.Equal(t, 0, hub.ClientCount())
}
