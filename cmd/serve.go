package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "github.com/flowdesk/flowdesk/internal/configs"
	httpapi "github.com/flowdesk/flowdesk/internal/http"
	middleware "github.com/flowdesk/flowdesk/internal/http/middlewares"
	repository "github.com/flowdesk/flowdesk/internal/repositories"
	"github.com/flowdesk/flowdesk/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the Flowdesk REST API and the embedded dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()

		database := config.New(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		userService := services.NewUserService(userRepo)
		projectService := services.NewProjectService(projectRepo)
		taskService := services.NewTaskService(taskRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		e.Use(middleware.RequestLogger(logger))

		handler := httpapi.NewHandler(userService, projectService, taskService, logger)
		httpapi.Register(e, handler)
		httpapi.RegisterStatic(e)

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
