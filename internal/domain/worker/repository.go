package worker

import "context"

// WorkerRepository is the Record Store contract for workers.
type WorkerRepository interface {
	Create(ctx context.Context, newWorker Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	// List returns every worker, newest first.
	List(ctx context.Context) ([]Worker, error)
	// ListByName returns the roster ordered by name.
	ListByName(ctx context.Context) ([]Worker, error)
	// Update replaces every field of the worker. Photo is written as given.
	Update(ctx context.Context, w Worker) (Worker, error)
	// Delete removes the worker together with all of its attendance records.
	Delete(ctx context.Context, id string) error
}
