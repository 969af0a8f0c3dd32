package container

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
	"github.com/saulo-duarte/quiz-wizard/internal/auth"
	"github.com/saulo-duarte/quiz-wizard/internal/config"
	"github.com/saulo-duarte/quiz-wizard/internal/router"
	"github.com/saulo-duarte/quiz-wizard/internal/session"
)

type Container struct {
	Settings         *config.Settings
	AIQuizContainer  *aiquiz.AIQuizContainer
	SessionContainer *session.SessionContainer
}

func New() *Container {
	settings := config.Init()

	secret := settings.JWTSecret
	if secret == "" && settings.Environment != "production" {
		config.Logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
		secret = uuid.NewString()
	}
	auth.Init(secret)

	if settings.GeminiAPIKey == "" {
		config.Logger.Warn("GEMINI_API_KEY not set, quiz generation will fail")
	}

	aiQuizContainer := aiquiz.NewAIQuizContainer(settings)
	sessionContainer := session.NewSessionContainer(settings, aiQuizContainer.Service)

	return &Container{
		Settings:         settings,
		AIQuizContainer:  aiQuizContainer,
		SessionContainer: sessionContainer,
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		AIQuizHandler:  c.AIQuizContainer.Handler,
		SessionHandler: c.SessionContainer.Handler,
		CorsOrigins:    c.Settings.CorsOrigins,
	})
}
