package wire

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"msgboard/internal/board"
	"msgboard/internal/common"
	"msgboard/internal/config"
	"msgboard/internal/dbmongo"
	"msgboard/internal/dbmysql"
	"msgboard/internal/health"
	"msgboard/internal/notif"
	"msgboard/internal/question"
	"msgboard/internal/relation"
	"msgboard/internal/user"
)

type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	Tokens        *common.TokenManager
	Users         *user.Handler
	Relations     *relation.Handler
	Notifications *notif.Handler
	Questions     *question.Handler
	Board         *board.Handler
	Health        *health.Checker
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideDatabase(cfg *config.Config, logger *slog.Logger) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := dbmysql.Close(db); err != nil {
			logger.Error("failed to close MySQL", "error", err)
		}
	}
	return db, cleanup, nil
}

func ProvideMongo(cfg *config.Config, logger *slog.Logger) (*dbmongo.MongoClient, func(), error) {
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mc.Close(ctx); err != nil {
			logger.Error("failed to close MongoDB", "error", err)
		}
	}
	return mc, cleanup, nil
}

// ProvideNotificationService builds the feed and attaches the log observer.
func ProvideNotificationService(store notif.NotificationStore, questions notif.QuestionReader, logger *slog.Logger) notif.NotificationService {
	svc := notif.NewNotificationService(store, questions, logger)
	svc.Subscribe(notif.NewLogObserver(logger))
	return svc
}
