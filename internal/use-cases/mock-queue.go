package use_cases

import (
	"github.com/rouasschnibir-dot/pfe/internal/queue"
	worker_task "github.com/rouasschnibir-dot/pfe/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

var _ queue.NotifyQueueContract = (*MockNotifyQueue)(nil)

// Mock NotifyQueue for testing
type MockNotifyQueue struct {
	mock.Mock
}

func (m *MockNotifyQueue) EnqueueValidationResultEmail(payload *worker_task.ValidationResultPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
