package main

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/factory-attendance-go/internal/config"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/factory-attendance-go/internal/domain/worker"
	appHTTP "github.com/cmlabs-hris/factory-attendance-go/internal/handler/http"
	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/factory-attendance-go/internal/repository/memory"
	"github.com/cmlabs-hris/factory-attendance-go/internal/repository/mongodb"
	"github.com/cmlabs-hris/factory-attendance-go/internal/repository/postgresql"
)

// recordStore is the opened store handle shared by every service.
type recordStore struct {
	name           string
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	ping           appHTTP.PingFunc
	close          func(ctx context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config) (*recordStore, error) {
	switch cfg.App.StoreType {
	case config.StorePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, err
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &recordStore{
			name:           config.StorePostgres,
			workerRepo:     postgresql.NewWorkerRepository(db),
			attendanceRepo: postgresql.NewAttendanceRepository(db),
			ping:           db.Ping,
			close: func(context.Context) error {
				db.Close()
				return nil
			},
		}, nil

	case config.StoreMongoDB:
		db, err := database.NewMongoDB(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = db.Close(ctx)
			return nil, err
		}
		return &recordStore{
			name:           config.StoreMongoDB,
			workerRepo:     mongodb.NewWorkerRepository(db),
			attendanceRepo: mongodb.NewAttendanceRepository(db),
			ping:           db.Ping,
			close:          db.Close,
		}, nil

	case config.StoreMemory:
		store := memory.NewStore()
		return &recordStore{
			name:           config.StoreMemory,
			workerRepo:     memory.NewWorkerRepository(store),
			attendanceRepo: memory.NewAttendanceRepository(store),
			close:          func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unsupported store type %q", cfg.App.StoreType)
}
