//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"msgboard/internal/board"
	"msgboard/internal/common"
	"msgboard/internal/dbmongo"
	"msgboard/internal/health"
	"msgboard/internal/logging"
	"msgboard/internal/notif"
	"msgboard/internal/question"
	"msgboard/internal/relation"
	"msgboard/internal/user"
)

var storeSet = wire.NewSet(
	ProvideDatabase,
	ProvideMongo,
	dbmongo.NewQuestionStore,
	dbmongo.NewNotificationStore,
	wire.Bind(new(question.QuestionStore), new(*dbmongo.QuestionStore)),
	wire.Bind(new(notif.QuestionReader), new(*dbmongo.QuestionStore)),
	wire.Bind(new(notif.NotificationStore), new(*dbmongo.NotificationStore)),
)

var serviceSet = wire.NewSet(
	user.NewUserRepository,
	user.NewUserService,
	relation.NewRelationRepository,
	relation.NewRelationService,
	ProvideNotificationService,
	question.NewQuestionService,
	board.NewMessageRepository,
	board.NewBoardService,
	wire.Bind(new(relation.UserLookup), new(user.UserService)),
	wire.Bind(new(relation.Notifier), new(notif.NotificationService)),
	wire.Bind(new(question.Notifier), new(notif.NotificationService)),
	wire.Bind(new(question.FriendLister), new(relation.RelationService)),
)

var handlerSet = wire.NewSet(
	user.NewHandler,
	relation.NewHandler,
	notif.NewHandler,
	question.NewHandler,
	board.NewHandler,
	health.NewStoreChecker,
)

func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		ProvideConfig,
		logging.New,
		common.NewTokenManager,
		storeSet,
		serviceSet,
		handlerSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
