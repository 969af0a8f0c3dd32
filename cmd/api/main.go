package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/quiz-wizard/internal/config"
	"github.com/saulo-duarte/quiz-wizard/internal/container"
	"github.com/saulo-duarte/quiz-wizard/internal/observability"
)

// @title                       Quiz Wizard API
// @version                     1.0
// @description                 Generates multiple-choice quizzes with Gemini and runs quiz-taking sessions.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	c := container.New()
	log := config.Logger

	shutdownOTel := observability.InitOTel(context.Background(), observability.OtelConfig{
		ServiceName: "quiz-wizard",
		Environment: c.Settings.Environment,
	})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(ctx); err != nil {
			log.WithError(err).Warn("otel shutdown failed")
		}
	}()

	handler := c.Router()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		log.Info("Starting in Lambda mode")
		lambda.Start(httpadapter.NewV2(handler).ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:              ":" + c.Settings.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", c.Settings.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	log.Info("Server stopped")
}
