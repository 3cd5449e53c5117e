package worker

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/validator"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		metrics.ObserveStoreError("list_workers", err)
		return nil, err
	}

	result := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		result = append(result, worker.NewWorkerResponse(w))
	}
	return result, nil
}

// GetWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	if validator.IsEmpty(id) {
		return worker.WorkerResponse{}, worker.ErrWorkerNotFound
	}
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		metrics.ObserveStoreError("get_worker", err)
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(w), nil
}

// CreateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, req.ToWorker())
	if err != nil {
		metrics.ObserveStoreError("create_worker", err)
		slog.Error("Failed to create worker", "name", req.Name, "error", err)
		return worker.WorkerResponse{}, err
	}

	slog.Info("Worker registered", "worker_id", created.ID, "work", created.Work)
	return worker.NewWorkerResponse(created), nil
}

// UpdateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	existing, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		metrics.ObserveStoreError("get_worker", err)
		return worker.WorkerResponse{}, err
	}

	updated := req.ToWorker()
	updated.ID = existing.ID
	if req.Photo == nil {
		updated.Photo = existing.Photo
	}

	saved, err := s.workerRepo.Update(ctx, updated)
	if err != nil {
		metrics.ObserveStoreError("update_worker", err)
		slog.Error("Failed to update worker", "worker_id", req.ID, "error", err)
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(saved), nil
}

// DeleteWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	if validator.IsEmpty(id) {
		return worker.ErrWorkerNotFound
	}
	if err := s.workerRepo.Delete(ctx, id); err != nil {
		metrics.ObserveStoreError("delete_worker", err)
		return err
	}
	slog.Info("Worker deleted with attendance history", "worker_id", id)
	return nil
}
