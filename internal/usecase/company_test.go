//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shiftboard/internal/domain/user"
	"shiftboard/internal/pkg/jwt"
	"shiftboard/internal/usecase"
	usecasemock "shiftboard/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CompanyUseCaseTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUserRepo    *usecasemock.MockUserRepository
	mockCompanyRepo *usecasemock.MockCompanyRepository
	useCase         usecase.CompanyUseCase
}

func (s *CompanyUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.mockCompanyRepo = usecasemock.NewMockCompanyRepository(s.mockCtrl)
	jwtService := jwt.NewService("test-secret-key-for-unit-tests", time.Hour)
	s.useCase = usecase.NewCompanyUseCase(s.mockCompanyRepo, s.mockUserRepo, jwtService)
}

func (s *CompanyUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCompanyUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CompanyUseCaseTestSuite))
}

func validRegisterParams() usecase.RegisterCompanyParams {
	return usecase.RegisterCompanyParams{
		CompanyName:  "Acme Inc",
		CompanyEmail: "contact@acme.example.com",
		Email:        "boss@acme.example.com",
		Password:     "password123",
		ManagerName:  "Acme Boss",
		Role:         "MANAGER",
	}
}

func (s *CompanyUseCaseTestSuite) TestRegister_Success() {
	params := validRegisterParams()

	s.mockCompanyRepo.EXPECT().EmailExists(gomock.Any(), params.CompanyEmail).Return(false, nil)
	s.mockUserRepo.EXPECT().EmailExists(gomock.Any(), params.Email, uuid.Nil).Return(false, nil)
	s.mockCompanyRepo.EXPECT().CreateWithManager(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.useCase.Register(context.Background(), params)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.NotEmpty(result.Token)
	s.NotEqual(uuid.Nil, result.CompanyID)
	s.NotEqual(uuid.Nil, result.UserID)
	s.Equal(result.UserID, result.Principal.UserID)
	s.Equal(result.CompanyID, result.Principal.CompanyID)
	s.Equal("Acme Inc", result.Principal.CompanyName)
	s.True(result.Principal.IsManager())
}

func (s *CompanyUseCaseTestSuite) TestRegister_RejectsNonManagerRole() {
	params := validRegisterParams()
	params.Role = "EMPLOYEE"

	result, err := s.useCase.Register(context.Background(), params)

	s.Require().ErrorIs(err, usecase.ErrRegistrationRole)
	s.Nil(result)
}

func (s *CompanyUseCaseTestSuite) TestRegister_DuplicateCompanyEmail() {
	params := validRegisterParams()

	s.mockCompanyRepo.EXPECT().EmailExists(gomock.Any(), params.CompanyEmail).Return(true, nil)

	result, err := s.useCase.Register(context.Background(), params)

	s.Require().ErrorIs(err, usecase.ErrCompanyEmailExists)
	s.Nil(result)
}

func (s *CompanyUseCaseTestSuite) TestRegister_DuplicateManagerEmail() {
	params := validRegisterParams()

	s.mockCompanyRepo.EXPECT().EmailExists(gomock.Any(), params.CompanyEmail).Return(false, nil)
	s.mockUserRepo.EXPECT().EmailExists(gomock.Any(), params.Email, uuid.Nil).Return(true, nil)

	result, err := s.useCase.Register(context.Background(), params)

	s.Require().ErrorIs(err, usecase.ErrUserEmailExists)
	s.Nil(result)
}

func (s *CompanyUseCaseTestSuite) TestRegister_DuplicateKeyOnCreate() {
	cases := []struct {
		name       string
		constraint string
		errIs      error
	}{
		{
			name:       "会社メールのユニーク制約違反",
			constraint: "companies_email_key",
			errIs:      usecase.ErrCompanyEmailExists,
		},
		{
			name:       "管理者メールのユニーク制約違反",
			constraint: "users_email_key",
			errIs:      usecase.ErrUserEmailExists,
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			params := validRegisterParams()

			s.mockCompanyRepo.EXPECT().EmailExists(gomock.Any(), params.CompanyEmail).Return(false, nil)
			s.mockUserRepo.EXPECT().EmailExists(gomock.Any(), params.Email, uuid.Nil).Return(false, nil)
			s.mockCompanyRepo.EXPECT().CreateWithManager(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(uniqueViolationRepoErr(c.constraint))

			result, err := s.useCase.Register(context.Background(), params)

			s.Require().ErrorIs(err, c.errIs)
			s.Nil(result)
		})
	}
}

func (s *CompanyUseCaseTestSuite) TestRegister_ValidationErrors() {
	cases := []struct {
		name   string
		mutate func(*usecase.RegisterCompanyParams)
		errIs  error
	}{
		{
			name:   "不正な会社メールアドレス",
			mutate: func(p *usecase.RegisterCompanyParams) { p.CompanyEmail = "not-an-email" },
			errIs:  user.ErrInvalidEmail,
		},
		{
			name:   "不正な管理者メールアドレス",
			mutate: func(p *usecase.RegisterCompanyParams) { p.Email = "not-an-email" },
			errIs:  user.ErrInvalidEmail,
		},
		{
			name:   "短すぎるパスワード",
			mutate: func(p *usecase.RegisterCompanyParams) { p.Password = "abc" },
			errIs:  user.ErrPasswordTooWeak,
		},
		{
			name:   "空の管理者名",
			mutate: func(p *usecase.RegisterCompanyParams) { p.ManagerName = "  " },
			errIs:  user.ErrEmptyName,
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			params := validRegisterParams()
			c.mutate(&params)

			result, err := s.useCase.Register(context.Background(), params)

			s.Require().ErrorIs(err, c.errIs)
			s.Nil(result)
		})
	}
}
