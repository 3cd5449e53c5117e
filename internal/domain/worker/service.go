package worker

import "context"

type WorkerService interface {
	ListWorkers(ctx context.Context) ([]WorkerResponse, error)
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	// UpdateWorker replaces all fields; the stored photo is kept when req.Photo is nil.
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)
	DeleteWorker(ctx context.Context, id string) error
}
