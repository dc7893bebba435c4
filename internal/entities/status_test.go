package entities_test

import (
	"testing"

	"github.com/eriju-studio/storefront-service/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_LegalEdges(t *testing.T) {
	testCases := []struct {
		from           entities.Status
		to             entities.Status
		customer       bool
		requiresReason bool
		notify         entities.EventKind
	}{
		{from: entities.StatusPending, to: entities.StatusProcessing},
		{from: entities.StatusProcessing, to: entities.StatusDelivered},
		{from: entities.StatusDelivered, to: entities.StatusCompleted, customer: true, notify: entities.EventCompleted},
		{from: entities.StatusPending, to: entities.StatusCancelling, customer: true, requiresReason: true},
		{from: entities.StatusProcessing, to: entities.StatusCancelling, customer: true, requiresReason: true},
		{from: entities.StatusCancelling, to: entities.StatusCancelled, notify: entities.EventCancelled},
		{from: entities.StatusCancelling, to: entities.StatusProcessing},
		{from: entities.StatusPending, to: entities.StatusCancelled, notify: entities.EventCancelled},
		{from: entities.StatusProcessing, to: entities.StatusCancelled, notify: entities.EventCancelled},
		{from: entities.StatusDelivered, to: entities.StatusCancelled, notify: entities.EventCancelled},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			rule, ok := entities.Transition(tc.from, tc.to)
			require.True(t, ok)
			assert.Equal(t, tc.requiresReason, rule.RequiresReason)
			assert.Equal(t, tc.notify, rule.Notify)
			assert.True(t, rule.Allows(entities.ActorAdmin))
			assert.Equal(t, tc.customer, rule.Allows(entities.ActorCustomer))
		})
	}
}

func TestTransition_IllegalEdges(t *testing.T) {
	legal := map[[2]entities.Status]bool{
		{entities.StatusPending, entities.StatusProcessing}:    true,
		{entities.StatusProcessing, entities.StatusDelivered}:  true,
		{entities.StatusDelivered, entities.StatusCompleted}:   true,
		{entities.StatusPending, entities.StatusCancelling}:    true,
		{entities.StatusProcessing, entities.StatusCancelling}: true,
		{entities.StatusCancelling, entities.StatusCancelled}:  true,
		{entities.StatusCancelling, entities.StatusProcessing}: true,
		{entities.StatusPending, entities.StatusCancelled}:     true,
		{entities.StatusProcessing, entities.StatusCancelled}:  true,
		{entities.StatusDelivered, entities.StatusCancelled}:   true,
	}

	// Every pair outside the table must be rejected.
	for _, from := range entities.Statuses {
		for _, to := range entities.Statuses {
			if legal[[2]entities.Status{from, to}] {
				continue
			}
			_, ok := entities.Transition(from, to)
			assert.False(t, ok, "expected %s -> %s to be illegal", from, to)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	for _, from := range entities.Statuses {
		hasOut := false
		for _, to := range entities.Statuses {
			if _, ok := entities.Transition(from, to); ok {
				hasOut = true
			}
		}
		assert.Equal(t, from.Terminal(), !hasOut, "status %s", from)
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, st := range entities.Statuses {
		assert.True(t, st.Valid())
	}
	assert.False(t, entities.Status("shipped").Valid())
	assert.False(t, entities.Status("").Valid())
}
