// Package memory is an in-process Record Store. It backs STORE_TYPE=memory
// and the service and handler tests.
package memory

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/google/uuid"
)

// Store holds both collections so that deleting a worker can cascade.
type Store struct {
	mu         sync.RWMutex
	workers    map[string]worker.Worker
	attendance map[string]attendance.Attendance
	byKey      map[attendanceKey]string
	now        func() time.Time
}

type attendanceKey struct {
	workerID string
	date     string
}

func NewStore() *Store {
	return &Store{
		workers:    make(map[string]worker.Worker),
		attendance: make(map[string]attendance.Attendance),
		byKey:      make(map[attendanceKey]string),
		now:        time.Now,
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
