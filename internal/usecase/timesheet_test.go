//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shiftboard/internal/domain/timesheet"
	"shiftboard/internal/pkg/clock"
	"shiftboard/internal/usecase"
	"shiftboard/internal/usecase/readmodel"
	"shiftboard/tests/common/builder"
	usecasemock "shiftboard/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimesheetUseCaseTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockTimesheetRepo *usecasemock.MockTimesheetRepository
	mockShiftRepo     *usecasemock.MockShiftRepositoryPort
	mockClock         *clock.FixedClock
	useCase           usecase.TimesheetUseCase
}

func (s *TimesheetUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTimesheetRepo = usecasemock.NewMockTimesheetRepository(s.mockCtrl)
	s.mockShiftRepo = usecasemock.NewMockShiftRepositoryPort(s.mockCtrl)
	s.mockClock = clock.NewFixedClock(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))
	s.useCase = usecase.NewTimesheetUseCase(s.mockTimesheetRepo, s.mockShiftRepo, s.mockClock)
}

func (s *TimesheetUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimesheetUseCaseSuite(t *testing.T) {
	suite.Run(t, new(TimesheetUseCaseTestSuite))
}

func (s *TimesheetUseCaseTestSuite) TestClockIn() {
	principal := builder.NewPrincipalBuilder().AsEmployee().Build()

	s.Run("自分のシフトに打刻できる", func() {
		shiftRM := builder.NewShiftBuilder().
			WithCompanyID(principal.CompanyID).
			WithAssignedTo(principal.UserID).
			BuildReadModel()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), shiftRM.ID).Return(shiftRM, nil)
		s.mockTimesheetRepo.EXPECT().FindOpenByUser(gomock.Any(), principal.UserID).Return(nil, notFoundRepoErr())
		s.mockTimesheetRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *timesheet.Entry) error {
				s.Equal(principal.UserID, e.UserID())
				s.Equal(shiftRM.ID, e.ShiftID())
				s.Equal(s.mockClock.Now(), e.ClockIn())
				s.Equal(principal.CompanyID, e.CompanyID())
				return nil
			})

		entry, err := s.useCase.ClockIn(context.Background(), principal, shiftRM.ID)

		s.Require().NoError(err)
		s.Equal(principal.UserID, entry.UserID)
		s.Equal(s.mockClock.Now(), entry.ClockIn)
		s.Nil(entry.ClockOut)
	})

	s.Run("他人のシフトへの打刻はForbidden", func() {
		shiftRM := builder.NewShiftBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), shiftRM.ID).Return(shiftRM, nil)

		_, err := s.useCase.ClockIn(context.Background(), principal, shiftRM.ID)

		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})

	s.Run("他社のシフトへの打刻はForbidden", func() {
		shiftRM := builder.NewShiftBuilder().WithAssignedTo(principal.UserID).BuildReadModel()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), shiftRM.ID).Return(shiftRM, nil)

		_, err := s.useCase.ClockIn(context.Background(), principal, shiftRM.ID)

		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})

	s.Run("既に打刻中なら二重打刻を拒否", func() {
		shiftRM := builder.NewShiftBuilder().
			WithCompanyID(principal.CompanyID).
			WithAssignedTo(principal.UserID).
			BuildReadModel()
		open := &readmodel.TimeEntryRM{ID: uuid.New(), UserID: principal.UserID, ClockIn: s.mockClock.Now()}

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), shiftRM.ID).Return(shiftRM, nil)
		s.mockTimesheetRepo.EXPECT().FindOpenByUser(gomock.Any(), principal.UserID).Return(open, nil)

		_, err := s.useCase.ClockIn(context.Background(), principal, shiftRM.ID)

		s.Require().ErrorIs(err, timesheet.ErrAlreadyClockedIn)
	})

	s.Run("存在しないシフトはNotFound", func() {
		id := uuid.New()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundRepoErr())

		_, err := s.useCase.ClockIn(context.Background(), principal, id)

		s.Require().ErrorIs(err, usecase.ErrNotFound)
	})
}

func (s *TimesheetUseCaseTestSuite) TestClockOut() {
	principal := builder.NewPrincipalBuilder().AsEmployee().Build()

	s.Run("打刻中のエントリを閉じられる", func() {
		open := &readmodel.TimeEntryRM{
			ID:        uuid.New(),
			CompanyID: principal.CompanyID,
			UserID:    principal.UserID,
			ShiftID:   uuid.New(),
			ClockIn:   s.mockClock.Now().Add(-4 * time.Hour),
		}

		s.mockTimesheetRepo.EXPECT().FindOpenByUser(gomock.Any(), principal.UserID).Return(open, nil)
		s.mockTimesheetRepo.EXPECT().Close(gomock.Any(), open.ID, s.mockClock.Now()).Return(nil)

		entry, err := s.useCase.ClockOut(context.Background(), principal)

		s.Require().NoError(err)
		s.Require().NotNil(entry.ClockOut)
		s.Equal(s.mockClock.Now(), *entry.ClockOut)
	})

	s.Run("打刻中でなければ拒否", func() {
		s.mockTimesheetRepo.EXPECT().FindOpenByUser(gomock.Any(), principal.UserID).Return(nil, notFoundRepoErr())

		_, err := s.useCase.ClockOut(context.Background(), principal)

		s.Require().ErrorIs(err, timesheet.ErrNotClockedIn)
	})
}

func (s *TimesheetUseCaseTestSuite) TestList() {
	s.Run("マネージャーは会社全体のエントリを見られる", func() {
		principal := builder.NewPrincipalBuilder().Build()

		s.mockTimesheetRepo.EXPECT().ListByCompany(gomock.Any(), principal.CompanyID).Return(nil, nil)

		_, err := s.useCase.List(context.Background(), principal)

		s.Require().NoError(err)
	})

	s.Run("従業員は自分のエントリのみ", func() {
		principal := builder.NewPrincipalBuilder().AsEmployee().Build()

		s.mockTimesheetRepo.EXPECT().ListByUser(gomock.Any(), principal.UserID).Return(nil, nil)

		_, err := s.useCase.List(context.Background(), principal)

		s.Require().NoError(err)
	})
}
