package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hallbook/config"
	"hallbook/infras/otel"
	"hallbook/internal/domains/equipment/model"
	"hallbook/internal/domains/equipment/model/dto"
	"hallbook/internal/domains/equipment/repository"
	hallModel "hallbook/internal/domains/hall/model"
	hallRepo "hallbook/internal/domains/hall/repository"
	userModel "hallbook/internal/domains/user/model"
	userService "hallbook/internal/domains/user/service"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"
)

const (
	cacheGetAllEquipment = "equipment:gets"
	cacheCountEquipment  = "equipment:count"
)

type Equipment interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetEquipmentResponse, error)
	UpdateCondition(ctx context.Context, req dto.UpdateConditionRequest) error
}

type serviceImpl struct {
	repo           repository.Equipment
	logRepo        repository.Log
	assignmentRepo hallRepo.Assignment
	userSvc        userService.User
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.Equipment,
	logRepo repository.Log,
	assignmentRepo hallRepo.Assignment,
	userSvc userService.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Equipment {
	return &serviceImpl{
		repo:           repo,
		logRepo:        logRepo,
		assignmentRepo: assignmentRepo,
		userSvc:        userSvc,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

// GetAll lists equipment in the halls the calling tech staff is assigned to.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetEquipmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return res, err
	}

	if profile.Role != userModel.RoleTechStaff {
		return res, failure.Forbidden("only tech staff can list equipment") // nolint:wrapcheck
	}

	hallIDs, err := s.assignedHallIDs(ctx, profile.UserID)
	if err != nil {
		return res, err
	}

	if len(hallIDs) == 0 {
		res.FromModels(nil, 0, params.Limit)

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHallID,
				Operator: gDto.FilterOperatorIn,
				Value:    hallIDs,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEquipment, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for equipment")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count equipment")

		return res, fmt.Errorf("failed to count equipment: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get equipment")

		return res, fmt.Errorf("failed to get equipment: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save equipment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) assignedHallIDs(ctx context.Context, techStaffID string) ([]string, error) {
	assignments, err := s.assignmentRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(techStaffID, hallModel.AssignmentFieldTechStaffID, hallModel.AssignmentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to list hall assignments")

		return nil, fmt.Errorf("failed to list hall assignments: %w", err)
	}

	hallIDs := make([]string, len(assignments))
	for i, assignment := range assignments {
		hallIDs[i] = assignment.HallID
	}

	return hallIDs, nil
}

// UpdateCondition appends an audit log row carrying the pre-update condition,
// then updates the equipment. Only tech staff assigned to the hall may write.
func (s *serviceImpl) UpdateCondition(ctx context.Context, req dto.UpdateConditionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCondition")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return err
	}

	if profile.Role != userModel.RoleTechStaff {
		return failure.Forbidden("only tech staff can update equipment") // nolint:wrapcheck
	}

	condition, err := model.ParseCondition(req.Condition)
	if err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	equipment, err := s.repo.Get(ctx, shared.FilterByID(req.EquipmentID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get equipment")

		return fmt.Errorf("failed to get equipment: %w", err)
	}

	if equipment.ID == constant.Empty {
		return failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	assigned, err := s.assignmentExists(ctx, equipment.HallID, profile.UserID)
	if err != nil {
		return err
	}

	if !assigned {
		return failure.Forbidden("equipment is outside your assigned halls") // nolint:wrapcheck
	}

	now := timezone.Now()
	entry := model.Log{
		ID:                uuid.NewString(),
		EquipmentID:       equipment.ID,
		PreviousCondition: equipment.Condition,
		NewCondition:      condition,
		Notes:             req.Notes,
		UpdatedBy:         profile.UserID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  profile.UserID,
			ModifiedBy: profile.UserID,
		},
	}

	if err = s.logRepo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to insert equipment log")

		return fmt.Errorf("failed to insert equipment log: %w", err)
	}

	updated := map[string]any{
		model.FieldCondition:     condition.String(),
		model.FieldLastUpdatedBy: profile.UserID,
		model.FieldLastUpdatedAt: now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: profile.UserID,
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(equipment.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update equipment")

		return fmt.Errorf("failed to update equipment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEquipment)
		shared.InvalidateCaches(c, s.cache, cacheCountEquipment)
	}()

	return nil
}

func (s *serviceImpl) assignmentExists(ctx context.Context, hallID, techStaffID string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    hallModel.AssignmentFieldHallID,
				Operator: gDto.FilterOperatorEq,
				Value:    hallID,
				Table:    hallModel.AssignmentTableName,
			},
			gDto.Filter{
				Field:    hallModel.AssignmentFieldTechStaffID,
				Operator: gDto.FilterOperatorEq,
				Value:    techStaffID,
				Table:    hallModel.AssignmentTableName,
			},
		},
	}

	assigned, err := s.assignmentRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check hall assignment")

		return false, fmt.Errorf("failed to check hall assignment: %w", err)
	}

	return assigned, nil
}
