//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shiftboard/internal/domain/shift"
	"shiftboard/internal/usecase"
	"shiftboard/internal/usecase/readmodel"
	"shiftboard/tests/common/builder"
	usecasemock "shiftboard/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShiftUseCaseTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockShiftRepo *usecasemock.MockShiftRepositoryPort
	mockUserRepo  *usecasemock.MockUserRepository
	useCase       usecase.ShiftUseCase
}

func (s *ShiftUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockShiftRepo = usecasemock.NewMockShiftRepositoryPort(s.mockCtrl)
	s.mockUserRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.useCase = usecase.NewShiftUseCase(s.mockShiftRepo, s.mockUserRepo)
}

func (s *ShiftUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShiftUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ShiftUseCaseTestSuite))
}

func (s *ShiftUseCaseTestSuite) TestGet() {
	s.Run("マネージャーは自社のシフトを参照できる", func() {
		principal := builder.NewPrincipalBuilder().Build()
		rm := builder.NewShiftBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		got, err := s.useCase.Get(context.Background(), principal, rm.ID)

		s.Require().NoError(err)
		s.Equal(rm, got)
	})

	s.Run("他社のシフトはForbidden", func() {
		principal := builder.NewPrincipalBuilder().Build()
		rm := builder.NewShiftBuilder().BuildReadModel() // 別companyID

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		_, err := s.useCase.Get(context.Background(), principal, rm.ID)

		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})

	s.Run("従業員は自分に割り当てられたシフトのみ参照できる", func() {
		principal := builder.NewPrincipalBuilder().AsEmployee().Build()
		own := builder.NewShiftBuilder().
			WithCompanyID(principal.CompanyID).
			WithAssignedTo(principal.UserID).
			BuildReadModel()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), own.ID).Return(own, nil)

		got, err := s.useCase.Get(context.Background(), principal, own.ID)
		s.Require().NoError(err)
		s.Equal(own, got)

		// 同じ会社でも他人のシフトはForbidden
		other := builder.NewShiftBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()
		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), other.ID).Return(other, nil)

		_, err = s.useCase.Get(context.Background(), principal, other.ID)
		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})

	s.Run("存在しないシフトはNotFound", func() {
		principal := builder.NewPrincipalBuilder().Build()
		id := uuid.New()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundRepoErr())

		_, err := s.useCase.Get(context.Background(), principal, id)

		s.Require().ErrorIs(err, usecase.ErrNotFound)
	})
}

func (s *ShiftUseCaseTestSuite) TestList() {
	s.Run("マネージャーは会社全体の一覧", func() {
		principal := builder.NewPrincipalBuilder().Build()
		shifts := []readmodel.ShiftRM{*builder.NewShiftBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()}

		s.mockShiftRepo.EXPECT().ListByCompany(gomock.Any(), principal.CompanyID).Return(shifts, nil)

		got, err := s.useCase.List(context.Background(), principal)

		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("従業員は自分の割り当て分のみ", func() {
		principal := builder.NewPrincipalBuilder().AsEmployee().Build()

		s.mockShiftRepo.EXPECT().ListByAssignee(gomock.Any(), principal.UserID).Return(nil, nil)

		_, err := s.useCase.List(context.Background(), principal)

		s.Require().NoError(err)
	})
}

func (s *ShiftUseCaseTestSuite) TestCreate() {
	principal := builder.NewPrincipalBuilder().Build()

	start := time.Now().Add(24 * time.Hour)
	params := usecase.CreateShiftParams{
		Title:      "Morning Shift",
		StartTime:  start,
		EndTime:    start.Add(8 * time.Hour),
		AssignedTo: uuid.New(),
		Notes:      "front desk",
	}

	s.Run("マネージャーは自社従業員のシフトを作成できる", func() {
		assignee := builder.NewUserBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()
		assignee.ID = params.AssignedTo

		created := builder.NewShiftBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()

		s.mockUserRepo.EXPECT().FindByID(gomock.Any(), params.AssignedTo).Return(assignee, nil)
		s.mockShiftRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sh *shift.Shift) error {
				s.Equal(principal.CompanyID, sh.CompanyID())
				s.Equal(principal.UserID, sh.CreatedBy())
				s.Equal(shift.StatusScheduled, sh.Status())
				return nil
			})
		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(created, nil)

		got, err := s.useCase.Create(context.Background(), principal, params)

		s.Require().NoError(err)
		s.Equal(created, got)
	})

	s.Run("従業員は作成できない", func() {
		employee := builder.NewPrincipalBuilder().AsEmployee().Build()

		_, err := s.useCase.Create(context.Background(), employee, params)

		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})

	s.Run("他社の従業員への割り当ては拒否", func() {
		assignee := builder.NewUserBuilder().WithCompanyID(uuid.New()).BuildReadModel()

		s.mockUserRepo.EXPECT().FindByID(gomock.Any(), params.AssignedTo).Return(assignee, nil)

		_, err := s.useCase.Create(context.Background(), principal, params)

		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})

	s.Run("時間帯が不正なら拒否", func() {
		assignee := builder.NewUserBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()

		bad := params
		bad.EndTime = bad.StartTime

		s.mockUserRepo.EXPECT().FindByID(gomock.Any(), bad.AssignedTo).Return(assignee, nil)

		_, err := s.useCase.Create(context.Background(), principal, bad)

		s.Require().ErrorIs(err, shift.ErrInvalidTimeSpan)
	})
}

func (s *ShiftUseCaseTestSuite) TestUpdate() {
	principal := builder.NewPrincipalBuilder().Build()

	start := time.Now().Add(24 * time.Hour)
	params := usecase.UpdateShiftParams{
		Title:      "Evening Shift",
		StartTime:  start,
		EndTime:    start.Add(6 * time.Hour),
		AssignedTo: uuid.New(),
		Status:     "COMPLETED",
		Notes:      "",
	}

	s.Run("最後の書き込みが優先で上書きされる", func() {
		existing := builder.NewShiftBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()
		assignee := builder.NewUserBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()
		updated := builder.NewShiftBuilder().WithCompanyID(principal.CompanyID).WithStatus("COMPLETED").BuildReadModel()

		gomock.InOrder(
			s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil),
			s.mockUserRepo.EXPECT().FindByID(gomock.Any(), params.AssignedTo).Return(assignee, nil),
			s.mockShiftRepo.EXPECT().Update(gomock.Any(), existing.ID, gomock.Any()).Return(nil),
			s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(updated, nil),
		)

		got, err := s.useCase.Update(context.Background(), principal, existing.ID, params)

		s.Require().NoError(err)
		s.Equal("COMPLETED", got.Status)
	})

	s.Run("他社のシフトは更新できない", func() {
		existing := builder.NewShiftBuilder().BuildReadModel()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil)

		_, err := s.useCase.Update(context.Background(), principal, existing.ID, params)

		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})

	s.Run("不正なステータスは拒否", func() {
		existing := builder.NewShiftBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()

		bad := params
		bad.Status = "DONE"

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil)

		_, err := s.useCase.Update(context.Background(), principal, existing.ID, bad)

		s.Require().ErrorIs(err, shift.ErrInvalidStatus)
	})
}

func (s *ShiftUseCaseTestSuite) TestDelete() {
	principal := builder.NewPrincipalBuilder().Build()

	s.Run("マネージャーは自社のシフトを削除できる", func() {
		existing := builder.NewShiftBuilder().WithCompanyID(principal.CompanyID).BuildReadModel()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil)
		s.mockShiftRepo.EXPECT().Delete(gomock.Any(), existing.ID).Return(nil)

		err := s.useCase.Delete(context.Background(), principal, existing.ID)

		s.Require().NoError(err)
	})

	s.Run("従業員は削除できない", func() {
		employee := builder.NewPrincipalBuilder().AsEmployee().Build()

		err := s.useCase.Delete(context.Background(), employee, uuid.New())

		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})

	s.Run("他社のシフトは削除できない", func() {
		existing := builder.NewShiftBuilder().BuildReadModel()

		s.mockShiftRepo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil)

		err := s.useCase.Delete(context.Background(), principal, existing.ID)

		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})
}
