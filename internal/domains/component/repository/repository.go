package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hallbook/infras/otel"
	"hallbook/infras/postgres"
	"hallbook/internal/domains/component/model"
	gDto "hallbook/shared/dto"
	gRepo "hallbook/shared/repository"
)

type Component interface {
	Insert(ctx context.Context, model model.Component) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Component, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Component, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Component]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Component {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Component](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Log interface {
	Insert(ctx context.Context, model model.Log) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Log, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type logRepositoryImpl struct {
	gRepo.Repository[model.Log]
	db   *postgres.Connection
	otel otel.Otel
}

func NewLog(db *postgres.Connection, otel otel.Otel) Log {
	return &logRepositoryImpl{
		Repository: gRepo.NewRepository[model.Log](model.LogEntityName, model.LogTableName, model.LogFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
