package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hallbook/infras/otel"
	"hallbook/infras/postgres"
	"hallbook/internal/domains/hall/model"
	gDto "hallbook/shared/dto"
	gRepo "hallbook/shared/repository"
)

type Hall interface {
	Insert(ctx context.Context, model model.SeminarHall) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SeminarHall, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SeminarHall, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type hallRepositoryImpl struct {
	gRepo.Repository[model.SeminarHall]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hall {
	return &hallRepositoryImpl{
		Repository: gRepo.NewRepository[model.SeminarHall](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Department interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Department, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Department, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type departmentRepositoryImpl struct {
	gRepo.Repository[model.Department]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDepartment(db *postgres.Connection, otel otel.Otel) Department {
	return &departmentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Department](model.DepartmentEntityName, model.DepartmentTableName, model.DepartmentFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Assignment interface {
	Insert(ctx context.Context, model model.Assignment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Assignment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type assignmentRepositoryImpl struct {
	gRepo.Repository[model.Assignment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAssignment(db *postgres.Connection, otel otel.Otel) Assignment {
	return &assignmentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Assignment](model.AssignmentEntityName, model.AssignmentTableName, model.AssignmentFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
