package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	"hallbook/infras/otel/mocks"
	hallMocks "hallbook/internal/domains/hall/mocks"
	hallModel "hallbook/internal/domains/hall/model"
	userMocks "hallbook/internal/domains/user/mocks"
	"hallbook/internal/domains/user/model"
	"hallbook/internal/domains/user/service"
	"hallbook/shared/constant"
	"hallbook/shared/failure"
)

type userMockSet struct {
	users    *userMocks.MockUser
	profiles *userMocks.MockProfile
	depts    *hallMocks.MockDepartment
}

func newUserService(ctrl *gomock.Controller) (service.User, userMockSet) {
	set := userMockSet{
		users:    userMocks.NewMockUser(ctrl),
		profiles: userMocks.NewMockProfile(ctrl),
		depts:    hallMocks.NewMockDepartment(ctrl),
	}

	svc := service.New(set.users, set.profiles, set.depts, &config.Config{}, mocks.NewOtel())

	return svc, set
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestUserService_CurrentProfile(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(set userMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "resolves the profile for the authenticated user",
			ctx:  authedCtx("user-1"),
			setupMock: func(set userMockSet) {
				set.profiles.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Profile{ID: "profile-1", UserID: "user-1", Role: model.RoleTeacher}, nil)
			},
			wantErr: false,
		},
		{
			name:      "missing user id is unauthorized",
			ctx:       context.Background(),
			setupMock: func(userMockSet) {},
			wantErr:   true,
			wantCode:  401,
		},
		{
			name: "user without a profile is unauthorized",
			ctx:  authedCtx("user-1"),
			setupMock: func(set userMockSet) {
				set.profiles.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{}, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "repository error surfaces",
			ctx:  authedCtx("user-1"),
			setupMock: func(set userMockSet) {
				set.profiles.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Profile{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newUserService(ctrl)
			tt.setupMock(set)

			profile, err := svc.CurrentProfile(tt.ctx)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "user-1", profile.UserID)
			}
		})
	}
}

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newUserService(ctrl)

	dept := "dept-1"
	set.profiles.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Profile{ID: "profile-1", UserID: "user-1", Role: model.RoleHOD, DepartmentID: &dept}, nil)
	set.depts.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(hallModel.Department{ID: dept, Name: "Computer Science"}, nil)

	res, err := svc.GetProfile(authedCtx("user-1"))

	assert.NoError(t, err)
	assert.Equal(t, "hod", res.Role)
	assert.Equal(t, "Computer Science", res.DepartmentName)
}

func TestUserService_UpsertFromProvider(t *testing.T) {
	providerUser := model.ProviderUser{
		ID:        "provider-1",
		FirstName: "Asha",
		LastName:  "Verma",
		ImageURL:  "https://img.example/avatar.png",
		EmailAddresses: []model.ProviderEmail{
			{EmailAddress: "asha@example.edu"},
		},
	}

	tests := []struct {
		name      string
		user      model.ProviderUser
		setupMock func(set userMockSet)
		wantErr   bool
	}{
		{
			name: "first event creates the mirror and a default teacher profile",
			user: providerUser,
			setupMock: func(set userMockSet) {
				set.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

				set.users.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, "provider-1", user.ProviderID)
						assert.Equal(t, "asha@example.edu", user.Email)

						return nil
					})

				set.profiles.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, profile model.Profile) error {
						assert.Equal(t, model.RoleTeacher, profile.Role)
						assert.Equal(t, "Asha Verma", profile.Name)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "later events update the mirror only",
			user: providerUser,
			setupMock: func(set userMockSet) {
				set.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "missing provider id is rejected",
			user:      model.ProviderUser{},
			setupMock: func(userMockSet) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newUserService(ctrl)
			tt.setupMock(set)

			err := svc.UpsertFromProvider(context.Background(), tt.user)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_DeleteFromProvider(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set userMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "deletes the profile before the mirror",
			setupMock: func(set userMockSet) {
				set.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: "user-1", ProviderID: "provider-1"}, nil)

				profileDelete := set.profiles.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				userDelete := set.users.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

				gomock.InOrder(profileDelete, userDelete)
			},
			wantErr: false,
		},
		{
			name: "unknown provider id",
			setupMock: func(set userMockSet) {
				set.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newUserService(ctrl)
			tt.setupMock(set)

			err := svc.DeleteFromProvider(context.Background(), "provider-1")

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
