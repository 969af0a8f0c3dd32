package session

import (
	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
	"github.com/saulo-duarte/quiz-wizard/internal/config"
)

type SessionContainer struct {
	Store   Store
	Service Service
	Handler *Handler
}

func NewSessionContainer(settings *config.Settings, quiz aiquiz.Service) *SessionContainer {
	log := config.Logger.WithField("store", settings.SessionStore)

	var store Store
	switch settings.SessionStore {
	case "redis":
		var sealer *config.Sealer
		if settings.CryptoKey != "" {
			s, err := config.NewSealer(settings.CryptoKey)
			if err != nil {
				log.WithError(err).Fatal("Invalid CRYPTO_KEY")
			}
			sealer = s
		}
		client := redis.NewClient(&redis.Options{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		store = NewRedisStore(client, settings.SessionTTL, sealer)
		log.WithField("sealed", sealer != nil).Info("Using redis session store")
	default:
		store = NewMemoryStore(settings.SessionTTL)
		log.Info("Using in-memory session store")
	}

	service := NewService(store, quiz)
	handler := NewHandler(service, settings.SessionTTL, settings.Environment == "production")

	return &SessionContainer{
		Store:   store,
		Service: service,
		Handler: handler,
	}
}
