package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hallbook/config"
	"hallbook/infras/otel"
	"hallbook/infras/s3"
	"hallbook/internal/domains/booking/model"
	"hallbook/internal/domains/booking/model/dto"
	"hallbook/internal/domains/booking/repository"
	hallModel "hallbook/internal/domains/hall/model"
	hallRepo "hallbook/internal/domains/hall/repository"
	notificationModel "hallbook/internal/domains/notification/model"
	notificationService "hallbook/internal/domains/notification/service"
	userModel "hallbook/internal/domains/user/model"
	userRepo "hallbook/internal/domains/user/repository"
	userService "hallbook/internal/domains/user/service"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	"hallbook/shared/timezone"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Decide(ctx context.Context, id string, req dto.DecideBookingRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	UploadPermissionLetter(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadLetterResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	hallRepo    hallRepo.Hall
	profileRepo userRepo.Profile
	userSvc     userService.User
	notifSvc    notificationService.Notification
	storage     s3.S3
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	hallRepository hallRepo.Hall,
	profileRepo userRepo.Profile,
	userSvc userService.User,
	notifSvc notificationService.Notification,
	storage s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		hallRepo:    hallRepository,
		profileRepo: profileRepo,
		userSvc:     userSvc,
		notifSvc:    notifSvc,
		storage:     storage,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create stores a pending booking for the calling teacher and notifies every
// HOD of the hall's department. Notification failures never roll the booking
// back; the request already succeeded.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return res, err
	}

	if profile.Role != userModel.RoleTeacher {
		return res, failure.Forbidden("only teachers can request bookings") // nolint:wrapcheck
	}

	hall, err := s.hallRepo.Get(ctx, shared.FilterByID(req.HallID, hallModel.FieldID, hallModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall")

		return res, fmt.Errorf("failed to get hall: %w", err)
	}

	if hall.ID == constant.Empty {
		return res, failure.BadRequestFromString("hall does not exist") // nolint:wrapcheck
	}

	booking, err := req.ToModel(profile.UserID)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.notifyDepartmentHods(ctx, hall, booking, profile.Name)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)
	res.HallName = hall.Name
	res.HallLocation = hall.Location
	res.TeacherName = profile.Name

	return res, nil
}

// notifyDepartmentHods fans a booking_request notification out to each HOD of
// the hall's department, best effort.
func (s *serviceImpl) notifyDepartmentHods(ctx context.Context, hall hallModel.SeminarHall, booking model.Booking, teacherName string) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.ProfileFieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    userModel.RoleHOD.String(),
				Table:    userModel.ProfileTableName,
			},
			gDto.Filter{
				Field:    userModel.ProfileFieldDepartmentID,
				Operator: gDto.FilterOperatorEq,
				Value:    hall.DepartmentID,
				Table:    userModel.ProfileTableName,
			},
		},
	}

	hods, err := s.profileRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to list department hods for notification")

		return
	}

	title := "New booking request"
	message := fmt.Sprintf("%s requested %s on %s from %s to %s", teacherName, hall.Name, booking.BookingDate.Format(constant.DateOnlyFormat), booking.StartTime, booking.EndTime)

	for _, hod := range hods {
		if err := s.notifSvc.Notify(ctx, hod.UserID, title, message, notificationModel.TypeBookingRequest, &booking.ID); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Str("hod_id", hod.UserID).Msg("failed to notify hod")
		}
	}
}

// Decide approves or rejects a pending booking. Only an HOD of the hall's
// department may decide; rejections carry a reason. There is no concurrency
// guard: a later conflicting decision overwrites an earlier one.
func (s *serviceImpl) Decide(ctx context.Context, id string, req dto.DecideBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decide")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return err
	}

	if profile.Role != userModel.RoleHOD {
		return failure.Forbidden("only hods can decide bookings") // nolint:wrapcheck
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil || !status.Decided() {
		return failure.BadRequestFromString("status must be approved or rejected") // nolint:wrapcheck
	}

	if status == model.StatusRejected && req.RejectionReason == constant.Empty {
		return failure.BadRequestFromString("rejection_reason is required when rejecting") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.DepartmentID != profile.Department() {
		return failure.Forbidden("booking is outside your department") // nolint:wrapcheck
	}

	now := timezone.Now()
	updated := map[string]any{
		model.FieldStatus:        status.String(),
		model.FieldHodID:         profile.UserID,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: profile.UserID,
	}

	switch status {
	case model.StatusApproved:
		updated[model.FieldApprovedAt] = now
	case model.StatusRejected:
		updated[model.FieldRejectionReason] = req.RejectionReason
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.notifyTeacherDecision(ctx, booking, status, req.RejectionReason)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) notifyTeacherDecision(ctx context.Context, booking model.Booking, status model.Status, reason string) {
	notifType := notificationModel.TypeBookingApproved
	title := "Booking approved"
	message := fmt.Sprintf("Your booking for %s on %s was approved", booking.HallName, booking.BookingDate.Format(constant.DateOnlyFormat))

	if status == model.StatusRejected {
		notifType = notificationModel.TypeBookingRejected
		title = "Booking rejected"
		message = fmt.Sprintf("Your booking for %s on %s was rejected: %s", booking.HallName, booking.BookingDate.Format(constant.DateOnlyFormat), reason)
	}

	if err := s.notifSvc.Notify(ctx, booking.TeacherID, title, message, notifType, &booking.ID); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to notify teacher")
	}
}

// GetAll lists bookings scoped by role: teachers see their own, HODs and tech
// staff see their department's halls. Newest first unless the caller sorts.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return res, err
	}

	var filter gDto.FilterGroup

	switch profile.Role {
	case userModel.RoleTeacher:
		filter = shared.FilterByID(profile.UserID, model.FieldTeacherID, model.TableName)
	case userModel.RoleHOD, userModel.RoleTechStaff:
		if profile.Department() == constant.Empty {
			res.FromModels(nil, 0, params.Limit)

			return res, nil
		}

		filter = shared.FilterByID(profile.Department(), hallModel.FieldDepartmentID, hallModel.TableName)
	default:
		return res, failure.Forbidden("unknown role") // nolint:wrapcheck
	}

	if params.SortBy == constant.Empty {
		params.SortBy = fmt.Sprintf("%s.%s", model.TableName, constant.FieldCreatedAt)
		params.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// UploadPermissionLetter stores the letter in object storage and returns the
// public URL to attach to a booking request.
func (s *serviceImpl) UploadPermissionLetter(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadLetterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPermissionLetter")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return res, err
	}

	if profile.Role != userModel.RoleTeacher {
		return res, failure.Forbidden("only teachers can upload permission letters") // nolint:wrapcheck
	}

	fileName := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	url, err := s.storage.UploadFile(ctx, s.cfg.External.S3.BucketName, s.cfg.External.S3.LetterDir, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload permission letter")

		return res, fmt.Errorf("failed to upload permission letter: %w", err)
	}

	res.URL = url

	return res, nil
}
