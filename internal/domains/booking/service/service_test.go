package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hallbook/config"
	"hallbook/infras/otel/mocks"
	s3Mocks "hallbook/infras/s3/mocks"
	bookingMocks "hallbook/internal/domains/booking/mocks"
	"hallbook/internal/domains/booking/model"
	"hallbook/internal/domains/booking/model/dto"
	"hallbook/internal/domains/booking/service"
	hallMocks "hallbook/internal/domains/hall/mocks"
	hallModel "hallbook/internal/domains/hall/model"
	notifMocks "hallbook/internal/domains/notification/service/mocks"
	userMocks "hallbook/internal/domains/user/mocks"
	userModel "hallbook/internal/domains/user/model"
	userSvcMocks "hallbook/internal/domains/user/service/mocks"
	cacheMocks "hallbook/shared/cache/mocks"
	gDto "hallbook/shared/dto"
	"hallbook/shared/failure"
)

const departmentID = "dept-1"

func teacherProfile() userModel.Profile {
	dept := departmentID

	return userModel.Profile{
		ID:           "profile-teacher",
		UserID:       "teacher-1",
		Name:         "Asha Verma",
		Role:         userModel.RoleTeacher,
		DepartmentID: &dept,
	}
}

func hodProfile() userModel.Profile {
	dept := departmentID

	return userModel.Profile{
		ID:           "profile-hod",
		UserID:       "hod-1",
		Name:         "Ravi Nair",
		Role:         userModel.RoleHOD,
		DepartmentID: &dept,
	}
}

func testHall() hallModel.SeminarHall {
	return hallModel.SeminarHall{
		ID:           "hall-1",
		Name:         "Main Seminar Hall",
		Location:     "Block A",
		DepartmentID: departmentID,
	}
}

type bookingMockSet struct {
	repo     *bookingMocks.MockBooking
	hallRepo *hallMocks.MockHall
	profiles *userMocks.MockProfile
	userSvc  *userSvcMocks.MockUser
	notifSvc *notifMocks.MockNotification
	storage  *s3Mocks.MockS3
	cache    *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:     bookingMocks.NewMockBooking(ctrl),
		hallRepo: hallMocks.NewMockHall(ctrl),
		profiles: userMocks.NewMockProfile(ctrl),
		userSvc:  userSvcMocks.NewMockUser(ctrl),
		notifSvc: notifMocks.NewMockNotification(ctrl),
		storage:  s3Mocks.NewMockS3(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, set.hallRepo, set.profiles, set.userSvc, set.notifSvc, set.storage, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		HallID:      "hall-1",
		BookingDate: "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "12:00",
		Purpose:     "Department seminar",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(set bookingMockSet)
		wantErr   bool
	}{
		{
			name: "teacher creates pending booking and every hod is notified",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(teacherProfile(), nil)
				set.hallRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testHall(), nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, "teacher-1", booking.TeacherID)
						assert.Nil(t, booking.HodID)

						return nil
					})

				hods := []userModel.Profile{
					{UserID: "hod-1", Role: userModel.RoleHOD},
					{UserID: "hod-2", Role: userModel.RoleHOD},
				}
				set.profiles.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(hods, nil)

				set.notifSvc.EXPECT().
					Notify(gomock.Any(), "hod-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				set.notifSvc.EXPECT().
					Notify(gomock.Any(), "hod-2", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "notification failure does not fail the booking",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(teacherProfile(), nil)
				set.hallRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testHall(), nil)
				set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

				set.profiles.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]userModel.Profile{{UserID: "hod-1"}}, nil)
				set.notifSvc.EXPECT().
					Notify(gomock.Any(), "hod-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))
			},
			wantErr: false,
		},
		{
			name: "hod cannot create bookings",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(hodProfile(), nil)
			},
			wantErr: true,
		},
		{
			name: "start time must precede end time",
			req: dto.CreateBookingRequest{
				HallID:      "hall-1",
				BookingDate: "2026-09-15",
				StartTime:   "12:00",
				EndTime:     "10:00",
				Purpose:     "Department seminar",
			},
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(teacherProfile(), nil)
				set.hallRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testHall(), nil)
			},
			wantErr: true,
		},
		{
			name: "unknown hall is rejected",
			req:  validReq,
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(teacherProfile(), nil)
				set.hallRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hallModel.SeminarHall{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusPending.String(), res.Status)
			}
		})
	}
}

func TestBookingService_Decide(t *testing.T) {
	storedBooking := model.Booking{
		ID:           "booking-1",
		HallID:       "hall-1",
		TeacherID:    "teacher-1",
		Status:       model.StatusPending,
		DepartmentID: departmentID,
		HallName:     "Main Seminar Hall",
	}

	tests := []struct {
		name      string
		req       dto.DecideBookingRequest
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "approve sets hod and approval timestamp",
			req:  dto.DecideBookingRequest{Status: "approved"},
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(hodProfile(), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusApproved.String(), updated[model.FieldStatus])
						assert.Equal(t, "hod-1", updated[model.FieldHodID])
						assert.Contains(t, updated, model.FieldApprovedAt)
						assert.NotContains(t, updated, model.FieldRejectionReason)

						return nil
					})

				set.notifSvc.EXPECT().
					Notify(gomock.Any(), "teacher-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "reject records the reason",
			req:  dto.DecideBookingRequest{Status: "rejected", RejectionReason: "hall under renovation"},
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(hodProfile(), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusRejected.String(), updated[model.FieldStatus])
						assert.Equal(t, "hall under renovation", updated[model.FieldRejectionReason])
						assert.NotContains(t, updated, model.FieldApprovedAt)

						return nil
					})

				set.notifSvc.EXPECT().
					Notify(gomock.Any(), "teacher-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "reject without reason mutates nothing",
			req:  dto.DecideBookingRequest{Status: "rejected"},
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(hodProfile(), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "teacher cannot decide",
			req:  dto.DecideBookingRequest{Status: "approved"},
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(teacherProfile(), nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "hod of another department is forbidden",
			req:  dto.DecideBookingRequest{Status: "approved"},
			setupMock: func(set bookingMockSet) {
				otherDept := "dept-2"
				profile := hodProfile()
				profile.DepartmentID = &otherDept

				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(profile, nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking, nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "unknown booking",
			req:  dto.DecideBookingRequest{Status: "approved"},
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(hodProfile(), nil)
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			err := svc.Decide(context.Background(), "booking-1", tt.req)

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

func TestBookingService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "teacher sees own bookings only",
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(teacherProfile(), nil)
				set.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "bookings.teacher_id")
						assert.Equal(t, "teacher-1", args[model.FieldTeacherID])
						assert.Equal(t, gDto.SortDirDesc, params.SortDir)

						return []model.Booking{{ID: "booking-1", TeacherID: "teacher-1", Status: model.StatusPending}}, nil
					})
			},
			wantTotal: 1,
		},
		{
			name: "hod sees department halls",
			setupMock: func(set bookingMockSet) {
				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(hodProfile(), nil)
				set.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "seminar_halls.department_id")
						assert.Equal(t, departmentID, args[hallModel.FieldDepartmentID])

						return nil, nil
					})
			},
			wantTotal: 0,
		},
		{
			name: "hod without department sees nothing",
			setupMock: func(set bookingMockSet) {
				profile := hodProfile()
				profile.DepartmentID = nil

				set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(profile, nil)
			},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestBookingService_UploadPermissionLetter(t *testing.T) {
	t.Run("only teachers may upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newBookingService(ctrl)
		set.userSvc.EXPECT().CurrentProfile(gomock.Any()).Return(hodProfile(), nil)

		_, err := svc.UploadPermissionLetter(context.Background(), nil, nil)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}
