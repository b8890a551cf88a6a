package site

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"coursebook/internal/catalog"
)

// Config captures the settings for serving the site.
type Config struct {
	Addr           string
	Catalog        *catalog.Catalog
	Logger         *logrus.Logger
	CORSOrigins    []string
	RequestTimeout time.Duration
	// Listening, when set, receives the bound address once the listener is open.
	Listening func(addr string)
}

// Serve starts the site and shuts it down gracefully when ctx is cancelled.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("site: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("site: addr is required")
	}
	handler, err := NewHandler(Options{
		Catalog:        cfg.Catalog,
		Logger:         cfg.Logger,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	if cfg.Listening != nil {
		cfg.Listening(listener.Addr().String())
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
