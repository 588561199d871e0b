package router

import (
	"io/fs"
	"net/http"

	"github.com/Totarae/MediaViewer/internal/handlers"
	"github.com/Totarae/MediaViewer/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Options дополнительные настройки маршрутизатора.
type Options struct {
	// Static корень статических файлов, отдаваемых по /static/.
	Static fs.FS
	// AllowedOrigins список источников для CORS.
	AllowedOrigins []string
}

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger, opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.GzipMiddleware) // Gzip-сжатие

	r.Get("/", handler.ViewMedia)
	r.Get("/health", handler.Health)

	if opts.Static != nil {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(opts.Static)))
		r.Handle("/static/*", fileServer)
	}
	return r
}
