package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hallbook/config"
	"hallbook/infras/kafka"
	"hallbook/infras/otel"
	"hallbook/internal/domains/notification/model"
	"hallbook/internal/domains/notification/model/dto"
	"hallbook/internal/domains/notification/repository"
	userService "hallbook/internal/domains/user/service"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"
)

type Notification interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, req dto.MarkReadRequest) error
	Notify(ctx context.Context, userID, title, message string, notifType model.Type, relatedBookingID *string) error
}

type serviceImpl struct {
	repo    repository.Notification
	userSvc userService.User
	kafka   kafka.Client
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Notification, userSvc userService.User, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:    repo,
		userSvc: userSvc,
		kafka:   kafkaClient,
		cfg:     cfg,
		otel:    otel,
	}
}

// GetAll lists the caller's notifications, newest first.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return res, err
	}

	if params.SortBy == constant.Empty {
		params.SortBy = fmt.Sprintf("%s.%s", model.TableName, constant.FieldCreatedAt)
		params.SortDir = gDto.SortDirDesc
	}

	filter := shared.FilterByID(profile.UserID, model.FieldUserID, model.TableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// MarkRead flips the read flag; only the owner may touch a notification.
func (s *serviceImpl) MarkRead(ctx context.Context, req dto.MarkReadRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.userSvc.CurrentProfile(ctx)
	if err != nil {
		return err
	}

	notification, err := s.repo.Get(ctx, shared.FilterByID(req.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	if notification.UserID != profile.UserID {
		return failure.Forbidden("notification belongs to another user") // nolint:wrapcheck
	}

	updated := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: profile.UserID,
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(req.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// Notify stores the notification row and mirrors it onto the kafka topic.
// The row is the source of truth; a publish failure is logged and swallowed.
func (s *serviceImpl) Notify(ctx context.Context, userID, title, message string, notifType model.Type, relatedBookingID *string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	notification := model.Notification{
		ID:               uuid.NewString(),
		UserID:           userID,
		Title:            title,
		Message:          message,
		Type:             notifType,
		RelatedBookingID: relatedBookingID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to insert notification")

		return fmt.Errorf("failed to insert notification: %w", err)
	}

	if s.cfg.Kafka.Enable {
		go func() {
			c := context.WithoutCancel(ctx)

			msg := kafka.Message{Key: notification.UserID, Value: notification}
			if err := s.kafka.SendMessages(c, constant.KafkaTopicNotifications, msg); err != nil {
				log.Error().Err(err).Str("notification_id", notification.ID).Msg("failed to publish notification")
			}
		}()
	}

	return nil
}
