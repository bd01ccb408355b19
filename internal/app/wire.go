//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/learnpath/internal/adapter/connectrpc"
	"github.com/eslsoft/learnpath/internal/adapter/repository"
	"github.com/eslsoft/learnpath/internal/infrastructure/config"
	"github.com/eslsoft/learnpath/internal/infrastructure/database"
	"github.com/eslsoft/learnpath/internal/infrastructure/server"
	"github.com/eslsoft/learnpath/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
	newLearningPolicy,
)

var loggerSet = wire.NewSet(
	server.NewLogger,
	wire.Bind(new(logrus.FieldLogger), new(*logrus.Logger)),
)

var databaseSet = wire.NewSet(
	database.NewDriver,
)

var repositorySet = wire.NewSet(
	repository.NewWordRepository,
	repository.NewProgressRepository,
	repository.NewAssignmentRepository,
	repository.NewAchievementRepository,
	repository.NewAppUnlockRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewAnswerEvaluator,
	usecase.NewRequirementRegistry,
	usecase.NewRewardUsecase,
	usecase.NewAchievementUsecase,
	usecase.NewStudyUsecase,
	usecase.NewGradingUsecase,
)

var serviceSet = wire.NewSet(
	connectrpc.NewLearningServiceServer,
)

var serverSet = wire.NewSet(
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		loggerSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
