package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/factory-attendance-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
	MaxBodyBytes   int64
}

func NewRouter(
	opts RouterOptions,
	healthHandler HealthHandler,
	workerHandler WorkerHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "factory-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	if opts.MaxBodyBytes > 0 {
		r.Use(chiMiddleware.RequestSize(opts.MaxBodyBytes))
	}

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", workerHandler.List)
			r.Post("/", workerHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", workerHandler.Get)
				r.Put("/", workerHandler.Update)
				r.Delete("/", workerHandler.Delete)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.Mark)
			r.Post("/batch", attendanceHandler.MarkBatch)
			r.Get("/report", reportHandler.GetMonthlyReport)
			r.Get("/date/{date}", attendanceHandler.ListByDate)
			r.Route("/worker/{workerId}", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListByWorker)
				r.Get("/report", reportHandler.GetWorkerReport)
			})
			r.Delete("/{id}", attendanceHandler.Delete)
		})
	})
	return r
}
