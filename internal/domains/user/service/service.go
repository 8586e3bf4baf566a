package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hallbook/config"
	"hallbook/infras/otel"
	hallModel "hallbook/internal/domains/hall/model"
	hallRepo "hallbook/internal/domains/hall/repository"
	"hallbook/internal/domains/user/model"
	"hallbook/internal/domains/user/model/dto"
	"hallbook/internal/domains/user/repository"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"
)

type User interface {
	CurrentProfile(ctx context.Context) (model.Profile, error)
	GetProfile(ctx context.Context) (dto.ProfileResponse, error)
	UpsertFromProvider(ctx context.Context, user model.ProviderUser) error
	DeleteFromProvider(ctx context.Context, providerID string) error
}

type serviceImpl struct {
	userRepo    repository.User
	profileRepo repository.Profile
	deptRepo    hallRepo.Department
	cfg         *config.Config
	otel        otel.Otel
}

func New(userRepo repository.User, profileRepo repository.Profile, deptRepo hallRepo.Department, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		deptRepo:    deptRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// CurrentProfile resolves the caller's profile from the user id the auth
// middleware put on the context. Every guarded operation starts here, the same
// way the original resolved the session user's profile per request.
func (s *serviceImpl) CurrentProfile(ctx context.Context) (res model.Profile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return res, failure.Unauthorized("unauthorized") // nolint:wrapcheck
	}

	profile, err := s.profileRepo.Get(ctx, shared.FilterByID(userID, model.ProfileFieldUserID, model.ProfileTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.Unauthorized("no profile for user") // nolint:wrapcheck
	}

	return profile, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.CurrentProfile(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(profile)

	if profile.DepartmentID != nil {
		dept, err := s.deptRepo.Get(ctx, shared.FilterByID(*profile.DepartmentID, hallModel.DepartmentFieldID, hallModel.DepartmentTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get department")

			return res, fmt.Errorf("failed to get department: %w", err)
		}

		res.DepartmentName = dept.Name
	}

	return res, nil
}

// UpsertFromProvider mirrors a user.created/user.updated event. First-time
// users get a default teacher profile; an admin reassigns roles afterwards.
func (s *serviceImpl) UpsertFromProvider(ctx context.Context, user model.ProviderUser) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertFromProvider")
	defer scope.End()
	defer scope.TraceIfError(err)

	if user.ID == constant.Empty {
		return failure.BadRequestFromString("provider user id is required") // nolint:wrapcheck
	}

	filter := shared.FilterByID(user.ID, model.FieldProviderID, model.TableName)

	exists, err := s.userRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		updated := shared.TransformFields(updateUserFields{
			Email:    user.PrimaryEmail(),
			ImageURL: user.ImageURL,
		}, constant.ContextSystem)

		if err = s.userRepo.Update(ctx, updated, filter); err != nil {
			log.Error().Err(err).Msg("failed to update mirrored user")

			return fmt.Errorf("failed to update mirrored user: %w", err)
		}

		return nil
	}

	now := timezone.Now()
	meta := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  constant.ContextSystem,
		ModifiedBy: constant.ContextSystem,
	}

	imageURL := user.ImageURL
	mirrored := model.User{
		ID:         user.ID,
		ProviderID: user.ID,
		Email:      user.PrimaryEmail(),
		ImageURL:   &imageURL,
		Metadata:   meta,
	}

	if err = s.userRepo.Insert(ctx, mirrored); err != nil {
		log.Error().Err(err).Msg("failed to insert mirrored user")

		return fmt.Errorf("failed to insert mirrored user: %w", err)
	}

	profile := model.Profile{
		ID:       uuid.NewString(),
		UserID:   mirrored.ID,
		Name:     fmt.Sprintf("%s %s", user.FirstName, user.LastName),
		Email:    mirrored.Email,
		Role:     model.RoleTeacher,
		Metadata: meta,
	}

	if err = s.profileRepo.Insert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to insert default profile")

		return fmt.Errorf("failed to insert default profile: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteFromProvider(ctx context.Context, providerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteFromProvider")
	defer scope.End()
	defer scope.TraceIfError(err)

	if providerID == constant.Empty {
		return failure.BadRequestFromString("provider user id is required") // nolint:wrapcheck
	}

	filter := shared.FilterByID(providerID, model.FieldProviderID, model.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get mirrored user")

		return fmt.Errorf("failed to get mirrored user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	profileFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ProfileFieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user.ID,
				Table:    model.ProfileTableName,
			},
		},
	}

	if err = s.profileRepo.Delete(ctx, profileFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete profile")

		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if err = s.userRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete mirrored user")

		return fmt.Errorf("failed to delete mirrored user: %w", err)
	}

	return nil
}

type updateUserFields struct {
	Email    string `db:"email"`
	ImageURL string `db:"image_url"`
}
