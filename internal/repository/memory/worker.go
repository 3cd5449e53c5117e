package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
)

type workerRepository struct {
	store *Store
}

func NewWorkerRepository(store *Store) worker.WorkerRepository {
	return &workerRepository{store: store}
}

// Create implements worker.WorkerRepository.
func (r *workerRepository) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	newWorker.ID = newID()
	newWorker.CreatedAt = now
	newWorker.UpdatedAt = now
	r.store.workers[newWorker.ID] = newWorker
	return newWorker, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	w, ok := r.store.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	workers := r.snapshot()
	sort.SliceStable(workers, func(i, j int) bool {
		if workers[i].CreatedAt.Equal(workers[j].CreatedAt) {
			return workers[i].ID > workers[j].ID
		}
		return workers[i].CreatedAt.After(workers[j].CreatedAt)
	})
	return workers, nil
}

// ListByName implements worker.WorkerRepository.
func (r *workerRepository) ListByName(ctx context.Context) ([]worker.Worker, error) {
	workers := r.snapshot()
	sort.SliceStable(workers, func(i, j int) bool {
		if workers[i].Name == workers[j].Name {
			return workers[i].ID < workers[j].ID
		}
		return workers[i].Name < workers[j].Name
	})
	return workers, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.workers[w.ID]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	w.CreatedAt = existing.CreatedAt
	w.UpdatedAt = r.store.now()
	r.store.workers[w.ID] = w
	return w, nil
}

// Delete implements worker.WorkerRepository.
func (r *workerRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.workers[id]; !ok {
		return worker.ErrWorkerNotFound
	}
	for attID, a := range r.store.attendance {
		if a.WorkerID == id {
			delete(r.store.attendance, attID)
			delete(r.store.byKey, attendanceKey{workerID: a.WorkerID, date: a.Date})
		}
	}
	delete(r.store.workers, id)
	return nil
}

func (r *workerRepository) snapshot() []worker.Worker {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	workers := make([]worker.Worker, 0, len(r.store.workers))
	for _, w := range r.store.workers {
		workers = append(workers, w)
	}
	return workers
}
