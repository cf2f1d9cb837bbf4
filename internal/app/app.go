package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avstrong/hotelier/internal/config"
	"github.com/avstrong/hotelier/internal/hotel"
	"github.com/avstrong/hotelier/internal/idgen/random"
	"github.com/avstrong/hotelier/internal/logger"
	"github.com/avstrong/hotelier/internal/migration"
	"github.com/avstrong/hotelier/internal/storage/memory"
	"github.com/avstrong/hotelier/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf := config.Load()

	storage := memory.New(memory.Config{L: l})
	if err := migration.Up(ctx, l, storage); err != nil {
		return fmt.Errorf("up catalog migration: %w", err)
	}

	l.LogInfo("Catalog migration has been applied")

	idGen := random.New()
	manager := hotel.New(l, storage, idGen, conf.HotelName)

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		LivenessEndpoint:  conf.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, manager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("%v is running on %v:%v...", manager.Name(), webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
