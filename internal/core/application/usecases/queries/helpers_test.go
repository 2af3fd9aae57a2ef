package queries_test

import (
	"taxidispatch/internal/core/domain/model/kernel"
)

// mockAggregateTracker is a no-op tracker for wiring repositories in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
