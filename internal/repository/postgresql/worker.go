package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const workerColumns = `id, name, phone, gender, join_date, work, address, salary, shift,
	reference, emergency_contact, id_proof, id_number, notes, photo, created_at, updated_at`

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.Name, &w.Phone, &w.Gender, &w.JoinDate, &w.Work, &w.Address, &w.Salary, &w.Shift,
		&w.Reference, &w.EmergencyContact, &w.IDProof, &w.IDNumber, &w.Notes, &w.Photo,
		&w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return worker.Worker{}, database.StoreError("generate worker id", err)
	}

	query := `
		INSERT INTO workers (
			id, name, phone, gender, join_date, work, address, salary, shift,
			reference, emergency_contact, id_proof, id_number, notes, photo
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + workerColumns

	created, err := scanWorker(q.QueryRow(ctx, query,
		id.String(), newWorker.Name, newWorker.Phone, newWorker.Gender, newWorker.JoinDate,
		newWorker.Work, newWorker.Address, newWorker.Salary, newWorker.Shift,
		newWorker.Reference, newWorker.EmergencyContact, newWorker.IDProof, newWorker.IDNumber,
		newWorker.Notes, newWorker.Photo,
	))
	if err != nil {
		return worker.Worker{}, database.StoreError("create worker", err)
	}
	return created, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, database.StoreError("get worker by id", err)
	}
	return w, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	return r.list(ctx, `SELECT `+workerColumns+` FROM workers ORDER BY created_at DESC, id DESC`)
}

// ListByName implements worker.WorkerRepository.
func (r *workerRepositoryImpl) ListByName(ctx context.Context) ([]worker.Worker, error) {
	return r.list(ctx, `SELECT `+workerColumns+` FROM workers ORDER BY name, id`)
}

func (r *workerRepositoryImpl) list(ctx context.Context, query string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, database.StoreError("list workers", err)
	}
	defer rows.Close()

	workers := make([]worker.Worker, 0)
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, database.StoreError("scan worker", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, database.StoreError("iterate workers", err)
	}
	return workers, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers SET
			name = $2, phone = $3, gender = $4, join_date = $5, work = $6, address = $7,
			salary = $8, shift = $9, reference = $10, emergency_contact = $11,
			id_proof = $12, id_number = $13, notes = $14, photo = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + workerColumns

	updated, err := scanWorker(q.QueryRow(ctx, query,
		w.ID, w.Name, w.Phone, w.Gender, w.JoinDate, w.Work, w.Address,
		w.Salary, w.Shift, w.Reference, w.EmergencyContact,
		w.IDProof, w.IDNumber, w.Notes, w.Photo,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, database.StoreError("update worker", err)
	}
	return updated, nil
}

// Delete implements worker.WorkerRepository.
// Attendance rows are removed in the same transaction; the FK cascade covers
// rows written concurrently.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM attendance WHERE worker_id = $1`, id); err != nil {
			return database.StoreError("delete worker attendance", err)
		}

		tag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
		if err != nil {
			return database.StoreError("delete worker", err)
		}
		if tag.RowsAffected() == 0 {
			return worker.ErrWorkerNotFound
		}
		return nil
	})
}
