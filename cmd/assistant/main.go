package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"assistant/internal/app"
	"assistant/internal/app/deps"
	"assistant/internal/app/services"
	dl "assistant/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()
	services := services.InitServices(deps)
	assistant := app.InitAssistant(deps, services)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopCh, closeCh := createChannel()
	defer closeCh()
	go func() {
		if _, ok := <-stopCh; ok {
			deps.Logger.Info(ctx, "Stop signal received.")
			cancel()
		}
	}()

	deps.Logger.Info(
		ctx,
		"Assistant has started.",
		dl.Entry("storeDriver", deps.Config.ReminderStoreDriver),
		dl.Entry("calendar", deps.Config.IsCalendarEnabled()),
		dl.Entry("checkInterval", deps.Config.ReminderCheckInterval.String()),
	)
	if err := assistant.Run(ctx); err != nil {
		dl.Error(ctx, deps.Logger, err)
	}
	deps.Logger.Info(context.Background(), "Assistant has stopped.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		signal.Stop(stopCh)
		close(stopCh)
	}
}
