package mqtt

import (
	"context"
	"fmt"
	"sync"

	coremqtt "github.com/kilianp07/rote/core/mqtt"
	"github.com/kilianp07/rote/core/model"
)

// Client mirrors the core mqtt.Client interface.
type Client = coremqtt.Client

// MockPublisher records notices in memory. It is used in tests.
type MockPublisher struct {
	Notices []coremqtt.Notice
	Fail    bool
	mu      sync.Mutex
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// PublishPlan records the notice or returns an error if configured to fail.
func (m *MockPublisher) PublishPlan(_ context.Context, plan model.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return fmt.Errorf("%w: mock", coremqtt.ErrPublish)
	}
	m.Notices = append(m.Notices, coremqtt.NewNotice(plan))
	return nil
}

// Published returns a copy of the recorded notices.
func (m *MockPublisher) Published() []coremqtt.Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]coremqtt.Notice(nil), m.Notices...)
}
