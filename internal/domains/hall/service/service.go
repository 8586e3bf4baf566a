package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hallbook/config"
	"hallbook/infras/otel"
	bookingModel "hallbook/internal/domains/booking/model"
	bookingDto "hallbook/internal/domains/booking/model/dto"
	bookingRepo "hallbook/internal/domains/booking/repository"
	componentModel "hallbook/internal/domains/component/model"
	componentDto "hallbook/internal/domains/component/model/dto"
	componentRepo "hallbook/internal/domains/component/repository"
	equipmentModel "hallbook/internal/domains/equipment/model"
	equipmentDto "hallbook/internal/domains/equipment/model/dto"
	equipmentRepo "hallbook/internal/domains/equipment/repository"
	"hallbook/internal/domains/hall/model"
	"hallbook/internal/domains/hall/model/dto"
	"hallbook/internal/domains/hall/repository"
	userService "hallbook/internal/domains/user/service"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
)

const (
	cacheGetHall     = "hall:get"
	cacheGetAllHalls = "hall:gets"

	recentBookingLimit = 5
)

type Hall interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetHallsResponse, error)
	Get(ctx context.Context, id string) (dto.HallDetailResponse, error)
}

type serviceImpl struct {
	repo          repository.Hall
	deptRepo      repository.Department
	equipmentRepo equipmentRepo.Equipment
	componentRepo componentRepo.Component
	bookingRepo   bookingRepo.Booking
	userSvc       userService.User
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Hall,
	deptRepo repository.Department,
	equipmentRepository equipmentRepo.Equipment,
	componentRepository componentRepo.Component,
	bookingRepository bookingRepo.Booking,
	userSvc userService.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Hall {
	return &serviceImpl{
		repo:          repo,
		deptRepo:      deptRepo,
		equipmentRepo: equipmentRepository,
		componentRepo: componentRepository,
		bookingRepo:   bookingRepository,
		userSvc:       userSvc,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// GetAll lists halls in the caller's department. Profiles without a
// department see every hall.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetHallsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return res, err
	}

	var filter gDto.FilterGroup
	if profile.Department() != constant.Empty {
		filter = shared.FilterByID(profile.Department(), model.FieldDepartmentID, model.TableName)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHalls, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for halls")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count halls")

		return res, fmt.Errorf("failed to count halls: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get halls")

		return res, fmt.Errorf("failed to get halls: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	s.fillDepartmentNames(ctx, &res)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save halls to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) fillDepartmentNames(ctx context.Context, res *dto.GetHallsResponse) {
	names := map[string]string{}

	for i, hall := range res.Halls {
		name, ok := names[hall.DepartmentID]
		if !ok {
			dept, err := s.deptRepo.Get(ctx, shared.FilterByID(hall.DepartmentID, model.DepartmentFieldID, model.DepartmentTableName))
			if err != nil {
				log.Error().Err(err).Str("department_id", hall.DepartmentID).Msg("failed to get department")

				continue
			}

			name = dept.Name
			names[hall.DepartmentID] = name
		}

		res.Halls[i].DepartmentName = name
	}
}

// Get returns the hall with its equipment, components, and the most recent
// approved bookings.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HallDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.userSvc.CurrentProfile(ctx); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetHall, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hall")

		return res, nil
	}

	hall, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall")

		return res, fmt.Errorf("failed to get hall: %w", err)
	}

	if hall.ID == constant.Empty {
		return res, failure.NotFound("hall not found") // nolint:wrapcheck
	}

	res.FromModel(hall)

	dept, err := s.deptRepo.Get(ctx, shared.FilterByID(hall.DepartmentID, model.DepartmentFieldID, model.DepartmentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get department")

		return res, fmt.Errorf("failed to get department: %w", err)
	}

	res.DepartmentName = dept.Name

	equipment, err := s.equipmentRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, equipmentModel.FieldHallID, equipmentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall equipment")

		return res, fmt.Errorf("failed to get hall equipment: %w", err)
	}

	res.Equipment = make([]equipmentDto.EquipmentResponse, len(equipment))
	for i, mod := range equipment {
		res.Equipment[i].FromModel(mod)
	}

	components, err := s.componentRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, componentModel.FieldHallID, componentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall components")

		return res, fmt.Errorf("failed to get hall components: %w", err)
	}

	res.Components = make([]componentDto.ComponentResponse, len(components))
	for i, mod := range components {
		res.Components[i].FromModel(mod)
	}

	bookingFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldHallID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingModel.StatusApproved.String(),
				Table:    bookingModel.TableName,
			},
		},
	}

	bookingParams := gDto.QueryParams{
		Limit:   recentBookingLimit,
		SortBy:  fmt.Sprintf("%s.%s", bookingModel.TableName, bookingModel.FieldBookingDate),
		SortDir: gDto.SortDirDesc,
	}

	bookings, err := s.bookingRepo.GetAll(ctx, bookingParams, bookingFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.RecentBookings = make([]bookingDto.BookingResponse, len(bookings))
	for i, mod := range bookings {
		res.RecentBookings[i].FromModel(mod)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hall to cache")
		}
	}()

	return res, nil
}
