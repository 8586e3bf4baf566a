package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	kafkaMocks "hallbook/infras/kafka/mocks"
	"hallbook/infras/otel/mocks"
	notificationMocks "hallbook/internal/domains/notification/mocks"
	"hallbook/internal/domains/notification/model"
	"hallbook/internal/domains/notification/model/dto"
	"hallbook/internal/domains/notification/service"
	userModel "hallbook/internal/domains/user/model"
	userSvcMocks "hallbook/internal/domains/user/service/mocks"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
)

type notificationMockSet struct {
	repo    *notificationMocks.MockNotification
	userSvc *userSvcMocks.MockUser
	kafka   *kafkaMocks.MockClient
}

func newNotificationService(ctrl *gomock.Controller, kafkaEnabled bool) (service.Notification, notificationMockSet) {
	set := notificationMockSet{
		repo:    notificationMocks.NewMockNotification(ctrl),
		userSvc: userSvcMocks.NewMockUser(ctrl),
		kafka:   kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.Enable = kafkaEnabled

	svc := service.New(set.repo, set.userSvc, set.kafka, cfg, mocks.NewOtel())

	return svc, set
}

func owner() userModel.Profile {
	return userModel.Profile{ID: "profile-1", UserID: "user-1", Role: userModel.RoleTeacher}
}

func TestNotificationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newNotificationService(ctrl, false)

	set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(owner(), nil)
	set.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	set.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Notification, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "notifications.user_id")
			assert.Equal(t, "user-1", args[model.FieldUserID])
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Notification{
				{ID: "notification-2", UserID: "user-1", Type: model.TypeBookingApproved},
				{ID: "notification-1", UserID: "user-1", Type: model.TypeBookingRequest},
			}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Notifications, 2)
}

func TestNotificationService_MarkRead(t *testing.T) {
	stored := model.Notification{ID: "notification-1", UserID: "user-1", Read: false}

	tests := []struct {
		name      string
		setupMock func(set notificationMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "owner marks a notification read",
			setupMock: func(set notificationMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(owner(), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, true, updated[model.FieldRead])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "someone else's notification is forbidden",
			setupMock: func(set notificationMockSet) {
				other := model.Notification{ID: "notification-1", UserID: "user-2"}

				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(owner(), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(other, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "unknown notification",
			setupMock: func(set notificationMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(owner(), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Notification{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newNotificationService(ctrl, false)
			tt.setupMock(set)

			err := svc.MarkRead(context.Background(), dto.MarkReadRequest{ID: "notification-1"})

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_Notify(t *testing.T) {
	t.Run("stores the row and publishes when kafka is enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newNotificationService(ctrl, true)

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, notification model.Notification) error {
				assert.Equal(t, "user-1", notification.UserID)
				assert.Equal(t, model.TypeBookingRequest, notification.Type)
				assert.False(t, notification.Read)

				return nil
			})

		set.kafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		bookingID := "booking-1"
		err := svc.Notify(context.Background(), "user-1", "New booking request", "details", model.TypeBookingRequest, &bookingID)

		assert.NoError(t, err)
	})

	t.Run("skips kafka when disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newNotificationService(ctrl, false)

		set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Notify(context.Background(), "user-1", "title", "message", model.TypeBookingApproved, nil)

		assert.NoError(t, err)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newNotificationService(ctrl, false)

		set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		err := svc.Notify(context.Background(), "user-1", "title", "message", model.TypeBookingApproved, nil)

		assert.Error(t, err)
	})
}
