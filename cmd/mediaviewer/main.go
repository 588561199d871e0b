package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Totarae/MediaViewer/internal/config"
	v1 "github.com/Totarae/MediaViewer/internal/grpc/v1"
	"github.com/Totarae/MediaViewer/internal/handlers"
	"github.com/Totarae/MediaViewer/internal/render"
	"github.com/Totarae/MediaViewer/internal/router"
	"github.com/Totarae/MediaViewer/internal/service"
	"github.com/Totarae/MediaViewer/web"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	svc := service.NewViewerService(logger)

	r, err := newRouter(cfg, svc, logger)
	if err != nil {
		logger.Fatal("Ошибка инициализации маршрутизатора", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, r, svc, logger); err != nil {
		logger.Fatal("Ошибка при работе сервера", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}

// newRouter собирает HTTP-маршрутизатор: шаблоны и статика берутся с диска,
// если каталоги заданы в конфигурации, иначе встроенные.
func newRouter(cfg *config.Config, svc *service.ViewerService, logger *zap.Logger) (http.Handler, error) {
	templates := web.Templates()
	if cfg.TemplatesDir != "" {
		templates = os.DirFS(cfg.TemplatesDir)
	}
	renderer, err := render.New(templates)
	if err != nil {
		return nil, err
	}

	var static fs.FS = web.Static()
	if cfg.StaticDir != "" {
		static = os.DirFS(cfg.StaticDir)
	}

	handler := handlers.NewHandler(svc, renderer, logger)
	return router.NewRouter(handler, logger, router.Options{
		Static:         static,
		AllowedOrigins: cfg.AllowedOrigins,
	}), nil
}

// serve запускает HTTP и, если задан адрес, gRPC сервер и останавливает их по отмене ctx.
func serve(ctx context.Context, cfg *config.Config, h http.Handler, svc *service.ViewerService, logger *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress), zap.Bool("https", cfg.EnableHTTPS))
		var err error
		if cfg.EnableHTTPS {
			err = srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.GRPCAddress != "" {
		grpcSrv := v1.NewServer(svc, logger)

		g.Go(func() error {
			lis, err := net.Listen("tcp", cfg.GRPCAddress)
			if err != nil {
				return fmt.Errorf("listen gRPC: %w", err)
			}
			logger.Info("gRPC сервер запущен", zap.String("address", cfg.GRPCAddress))
			if err := grpcSrv.Serve(lis); !errors.Is(err, grpc.ErrServerStopped) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			grpcSrv.GracefulStop()
			return nil
		})
	}

	return g.Wait()
}
