package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"webboot/core/app"
	"webboot/core/loader"
	"webboot/core/logger"
	"webboot/core/monitor"
	"webboot/core/server"
	"webboot/core/store"

	"webboot/feature/index"
	"webboot/feature/status"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const siteTitle = "webboot"

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the web server",
	Long:  `Loads .env, assembles the application and listens on 0.0.0.0:PORT (or a pipe).`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg := loadConfig(os.Stderr)

		// 2. Initialize Logger
		logs, err := logger.Open(&cfg.Log, cfg.Server.Debug)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logs.Close()
		logg := logs.App
		server.LogEnvironment(logg, cfg.Server)

		// 3. Normalize the listen target, once, before anything binds
		target := server.NormalizePort(cfg.Server.Port)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 4. Connect to the store (Optional)
		client := store.NewClient(cfg.Store)
		defer client.Close()
		pingCtx, cancel := context.WithTimeout(ctx, cfg.Store.Timeout)
		if err := client.Ping(pingCtx); err != nil {
			logg.Warn("Optional store connection failed", zap.Error(err))
		} else {
			logg.Info("Connected to store", zap.String("addr", client.Addr()))
		}
		cancel()

		// 5. Register Features
		mgr := loader.NewManager()
		mgr.Register(index.NewFeature(siteTitle, logg))
		mgr.Register(status.NewFeature(client, cfg.Server.Env, cfg.Store.Timeout, logg))

		// 6. Assemble the application; nothing is registered after this
		application, err := app.New(app.Options{
			Server:   cfg.Server,
			Logs:     logs,
			Features: mgr,
		})
		if err != nil {
			logg.Fatal("Failed to assemble application", zap.Error(err))
		}

		// 7. Bind
		ln, err := server.Bind(target)
		if err != nil {
			_ = logs.Sync()
			server.OnBindError(err, os.Stderr, os.Exit, logs.Exceptions)
		}
		server.LogListening(logg, ln.Addr())

		// 8. Memory Reporter
		if sampler, err := monitor.NewProcessSampler(); err != nil {
			logg.Warn("Memory reporting disabled", zap.Error(err))
		} else {
			go monitor.NewReporter(sampler, logg, cfg.Server.MemoryInterval).Run(ctx)
		}

		// 9. Serve
		errCh := make(chan error, 1)
		go func() {
			errCh <- application.Listener(ln)
		}()

		// 10. Graceful Shutdown
		select {
		case err := <-errCh:
			if err != nil {
				logg.Fatal("Server stopped unexpectedly", zap.Error(err))
			}
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		if err := application.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			logg.Error("Graceful shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
