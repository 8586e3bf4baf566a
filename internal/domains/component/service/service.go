package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hallbook/config"
	"hallbook/infras/otel"
	"hallbook/internal/domains/component/model"
	"hallbook/internal/domains/component/model/dto"
	"hallbook/internal/domains/component/repository"
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
	cacheGetAllComponent = "component:gets"
	cacheCountComponent  = "component:count"
)

type Component interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetComponentsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
}

type serviceImpl struct {
	repo    repository.Component
	logRepo repository.Log
	userSvc userService.User
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.Component,
	logRepo repository.Log,
	userSvc userService.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Component {
	return &serviceImpl{
		repo:    repo,
		logRepo: logRepo,
		userSvc: userSvc,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// GetAll lists hall components for tech staff.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetComponentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return res, err
	}

	if profile.Role != userModel.RoleTechStaff {
		return res, failure.Forbidden("only tech staff can list components") // nolint:wrapcheck
	}

	var filter gDto.FilterGroup

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllComponent, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for components")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count components")

		return res, fmt.Errorf("failed to count components: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get components")

		return res, fmt.Errorf("failed to get components: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save components to cache")
		}
	}()

	return res, nil
}

// UpdateStatus appends a maintenance log row with the pre-update status, then
// updates the component and stamps last_maintenance.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return err
	}

	if profile.Role != userModel.RoleTechStaff {
		return failure.Forbidden("only tech staff can update components") // nolint:wrapcheck
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	component, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get component")

		return fmt.Errorf("failed to get component: %w", err)
	}

	if component.ID == constant.Empty {
		return failure.NotFound("component not found") // nolint:wrapcheck
	}

	now := timezone.Now()

	var notes *string
	if req.Notes != constant.Empty {
		notes = &req.Notes
	}

	entry := model.Log{
		ID:             uuid.NewString(),
		ComponentID:    component.ID,
		Action:         fmt.Sprintf("Status updated to %s", status),
		PreviousStatus: component.Status,
		NewStatus:      status,
		Notes:          notes,
		PerformedBy:    profile.UserID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  profile.UserID,
			ModifiedBy: profile.UserID,
		},
	}

	if err = s.logRepo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to insert maintenance log")

		return fmt.Errorf("failed to insert maintenance log: %w", err)
	}

	updated := map[string]any{
		model.FieldStatus:          status.String(),
		model.FieldLastMaintenance: now,
		constant.FieldModifiedAt:   now,
		constant.FieldModifiedBy:   profile.UserID,
	}

	if req.Notes != constant.Empty {
		updated[model.FieldNotes] = req.Notes
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(component.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update component")

		return fmt.Errorf("failed to update component: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllComponent)
		shared.InvalidateCaches(c, s.cache, cacheCountComponent)
	}()

	return nil
}
