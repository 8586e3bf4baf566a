package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	"hallbook/infras/otel/mocks"
	componentMocks "hallbook/internal/domains/component/mocks"
	"hallbook/internal/domains/component/model"
	"hallbook/internal/domains/component/model/dto"
	"hallbook/internal/domains/component/service"
	userModel "hallbook/internal/domains/user/model"
	userSvcMocks "hallbook/internal/domains/user/service/mocks"
	cacheMocks "hallbook/shared/cache/mocks"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
)

type componentMockSet struct {
	repo    *componentMocks.MockComponent
	logRepo *componentMocks.MockLog
	userSvc *userSvcMocks.MockUser
	cache   *cacheMocks.MockRedisCache
}

func newComponentService(ctrl *gomock.Controller) (service.Component, componentMockSet) {
	set := componentMockSet{
		repo:    componentMocks.NewMockComponent(ctrl),
		logRepo: componentMocks.NewMockLog(ctrl),
		userSvc: userSvcMocks.NewMockUser(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, set.logRepo, set.userSvc, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func techStaff() userModel.Profile {
	return userModel.Profile{ID: "profile-tech", UserID: "tech-1", Role: userModel.RoleTechStaff}
}

func TestComponentService_UpdateStatus(t *testing.T) {
	storedComponent := model.Component{
		ID:     "component-1",
		HallID: "hall-1",
		Name:   "Air Conditioner",
		Status: model.StatusOperational,
	}

	tests := []struct {
		name      string
		req       dto.UpdateStatusRequest
		setupMock func(set componentMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "maintenance log captures action and previous status",
			req:  dto.UpdateStatusRequest{Status: "faulty", Notes: "compressor noise"},
			setupMock: func(set componentMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(techStaff(), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedComponent, nil)

				logInsert := set.logRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry model.Log) error {
						assert.Equal(t, "Status updated to faulty", entry.Action)
						assert.Equal(t, model.StatusOperational, entry.PreviousStatus)
						assert.Equal(t, model.StatusFaulty, entry.NewStatus)
						assert.Equal(t, "tech-1", entry.PerformedBy)

						return nil
					})

				update := set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusFaulty.String(), updated[model.FieldStatus])
						assert.Contains(t, updated, model.FieldLastMaintenance)
						assert.Equal(t, "compressor noise", updated[model.FieldNotes])

						return nil
					})

				gomock.InOrder(logInsert, update)
			},
			wantErr: false,
		},
		{
			name: "notes stay untouched when omitted",
			req:  dto.UpdateStatusRequest{Status: "maintenance"},
			setupMock: func(set componentMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(techStaff(), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedComponent, nil)
				set.logRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated map[string]any, _ gDto.FilterGroup) error {
						assert.NotContains(t, updated, model.FieldNotes)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "teacher is forbidden",
			req:  dto.UpdateStatusRequest{Status: "faulty"},
			setupMock: func(set componentMockSet) {
				set.userSvc.EXPECT().
					CurrentProfile(gomock.Any()).
					Return(userModel.Profile{UserID: "teacher-1", Role: userModel.RoleTeacher}, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "unknown component",
			req:  dto.UpdateStatusRequest{Status: "faulty"},
			setupMock: func(set componentMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(techStaff(), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Component{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "unknown status",
			req:  dto.UpdateStatusRequest{Status: "exploded"},
			setupMock: func(set componentMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(techStaff(), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newComponentService(ctrl)
			tt.setupMock(set)

			err := svc.UpdateStatus(context.Background(), "component-1", tt.req)

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

func TestComponentService_GetAll(t *testing.T) {
	t.Run("tech staff lists components", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newComponentService(ctrl)

		set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(techStaff(), nil)
		set.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Component{{ID: "component-1", Status: model.StatusOperational}}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Components, 1)
	})

	t.Run("teacher is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newComponentService(ctrl)

		set.userSvc.EXPECT().
			CurrentProfile(gomock.Any()).
			Return(userModel.Profile{UserID: "teacher-1", Role: userModel.RoleTeacher}, nil)

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}
