//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"shiftboard/internal/handler/dto/request"
	"shiftboard/internal/handler/dto/response"
	"shiftboard/tests/common/httptest"
	"shiftboard/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/companies/register"
	loginURL    = "/api/auth/login"
	verifyURL   = "/api/auth/verify"
	logoutURL   = "/api/auth/logout"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) registerBody(companyName, companyEmail, managerEmail string) request.RegisterCompanyRequest {
	return request.RegisterCompanyRequest{
		CompanyName:  companyName,
		CompanyEmail: companyEmail,
		Email:        managerEmail,
		Password:     "password123",
		ManagerName:  "Alice Manager",
		Role:         "MANAGER",
	}
}

// 会社を登録してセッションクッキーを返す
func (s *authSuite) registerCompany(companyName, companyEmail, managerEmail string) *http.Cookie {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, s.registerBody(companyName, companyEmail, managerEmail))
	require.Equal(t, http.StatusCreated, w.Code, "会社登録に失敗: %s", w.Body.String())

	token := httptest.ExtractCookie(w, "token")
	require.NotNil(t, token, "セッションクッキーが設定されていない")
	return token
}

func (s *authSuite) login(email, password string) (*http.Cookie, int) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
		Email:    email,
		Password: password,
	})
	return httptest.ExtractCookie(w, "token"), w.Code
}

func (s *authSuite) TestRegisterCompany() {
	s.Run("正常な登録でセッションが発行される", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			s.registerBody("Acme Inc", "contact@acme.example.com", "alice@acme.example.com"))

		var res response.RegisterCompanyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.NotEmpty(t, res.CompanyID)
		require.NotEmpty(t, res.UserID)

		cookie := httptest.ExtractCookie(w, "token")
		require.NotNil(t, cookie, "セッションクッキーが設定されていない")
		require.True(t, cookie.HttpOnly, "クッキーがHttpOnlyでない")

		// 発行されたセッションでそのまま認証できること
		vw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, verifyURL, nil, []*http.Cookie{cookie})
		var verify response.VerifyResponse
		httptest.AssertSuccessResponse(t, vw, http.StatusOK, &verify)
		require.Equal(t, "alice@acme.example.com", verify.User.Email)
		require.Equal(t, "MANAGER", verify.User.Role)
		require.Equal(t, "Acme Inc", verify.User.CompanyName)
	})

	s.Run("同名の会社でもメールが異なれば登録できる", func() {
		t := s.T()

		s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			s.registerBody("Acme Inc", "contact@acme-berlin.example.com", "bob@acme-berlin.example.com"))

		var res response.RegisterCompanyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.NotEmpty(t, res.CompanyID)
	})

	s.Run("会社メールアドレスの重複は拒否される", func() {
		t := s.T()

		s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			s.registerBody("Other Inc", "contact@acme.example.com", "bob@other.example.com"))

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Company email already exists")
	})

	s.Run("管理者メールアドレスの重複は拒否される", func() {
		t := s.T()

		s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			s.registerBody("Other Inc", "contact@other.example.com", "alice@acme.example.com"))

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "User email already exists")
	})

	s.Run("EMPLOYEEロールでの登録は拒否される", func() {
		t := s.T()

		body := s.registerBody("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")
		body.Role = "EMPLOYEE"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid role for company registration")
	})

	s.Run("必須フィールドの欠落は拒否される", func() {
		t := s.T()

		body := s.registerBody("", "contact@acme.example.com", "alice@acme.example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *authSuite) TestLogin() {
	s.Run("正しい認証情報でログインできる", func() {
		t := s.T()

		s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		cookie, code := s.login("alice@acme.example.com", "password123")
		require.Equal(t, http.StatusOK, code)
		require.NotNil(t, cookie, "セッションクッキーが設定されていない")
		require.NotEmpty(t, cookie.Value)
	})

	s.Run("間違ったパスワードは401", func() {
		t := s.T()

		s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		_, code := s.login("alice@acme.example.com", "wrongpassword")
		require.Equal(t, http.StatusUnauthorized, code)
	})

	s.Run("存在しないユーザーは401", func() {
		t := s.T()

		_, code := s.login("nobody@example.com", "password123")
		require.Equal(t, http.StatusUnauthorized, code)
	})

	s.Run("非アクティブユーザーは403", func() {
		t := s.T()

		s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE email = 'alice@acme.example.com'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "alice@acme.example.com",
			Password: "password123",
		})
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Account is not active")
	})
}

func (s *authSuite) TestVerify() {
	s.Run("有効なセッションでユーザー情報が返る", func() {
		t := s.T()

		cookie := s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, verifyURL, nil, []*http.Cookie{cookie})

		var res response.VerifyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "alice@acme.example.com", res.User.Email)
		require.NotEmpty(t, res.User.UserID)
		require.NotEmpty(t, res.User.CompanyID)
	})

	s.Run("クッキーなしは401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, verifyURL, nil)

		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "No token provided")
	})

	s.Run("改ざんされたトークンは401", func() {
		t := s.T()

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, verifyURL, nil,
			[]*http.Cookie{{Name: "token", Value: "not-a-jwt"}})

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでクッキーが破棄される", func() {
		t := s.T()

		cookie := s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, []*http.Cookie{cookie})
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, "token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value, "クッキーの値が消去されていない")
		require.Negative(t, cleared.MaxAge, "クッキーの有効期限が無効化されていない")
	})

	s.Run("発行済みトークンは有効期限まで使える", func() {
		t := s.T()

		cookie := s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, []*http.Cookie{cookie})
		require.Equal(t, http.StatusNoContent, w.Code)

		// サーバー側に失効リストは持たないので、保存済みトークンは期限まで解決できる
		vw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, verifyURL, nil, []*http.Cookie{cookie})
		require.Equal(t, http.StatusOK, vw.Code)
	})
}

func (s *authSuite) TestPageGate() {
	s.Run("未認証のブラウザナビゲーションはログインへリダイレクト", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/dashboard", nil)

		httptest.AssertRedirect(t, w, "/login")
	})

	s.Run("認証済みならゲート対象ページに到達できる", func() {
		t := s.T()

		cookie := s.registerCompany("Acme Inc", "contact@acme.example.com", "alice@acme.example.com")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, "/dashboard", nil, []*http.Cookie{cookie})

		// ゲートは通過する（SPA側のルートなのでAPIサーバーとしては404）
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
