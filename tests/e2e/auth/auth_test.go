//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"membership-backoffice/internal/domain/employee"
	"membership-backoffice/internal/handler/dto/request"
	"membership-backoffice/internal/handler/dto/response"
	"membership-backoffice/tests/common/authtest"
	"membership-backoffice/tests/common/dbtest"
	"membership-backoffice/tests/common/httptest"
	"membership-backoffice/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestEmployee(s.T(), s.DB, "admin@example.com", string(employee.RoleAdmin))
	dbtest.CreateTestEmployee(s.T(), s.DB, "viewer@example.com", string(employee.RoleViewer))
	dbtest.CreateTestEmployee(s.T(), s.DB, "operator@example.com", string(employee.RoleOperator))
	dbtest.CreateTestEmployee(s.T(), s.DB, "inactive@example.com", string(employee.RoleAdmin))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE employees SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "admin@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown employee",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive employee",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "admin@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "access token is empty")
				require.NotNil(t, loginRes.Employee, "employee payload missing")
				require.Equal(t, tt.email, loginRes.Employee.Email)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupEmployee  func() (string, string, string) // email, role, token
		expectedStatus int
	}{
		{
			name: "admin employee",
			setupEmployee: func() (string, string, string) {
				email := "admin@example.com"
				role := string(employee.RoleAdmin)
				token := authtest.LoginEmployee(s.T(), s.Router, email, "password123")
				return email, role, token
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "viewer employee",
			setupEmployee: func() (string, string, string) {
				email := "viewer@example.com"
				role := string(employee.RoleViewer)
				token := authtest.LoginEmployee(s.T(), s.Router, email, "password123")
				return email, role, token
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid token",
			setupEmployee: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing token",
			setupEmployee: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupEmployee()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email)
				require.Contains(t, responseBody, role)
				require.NotContains(t, responseBody, "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		employeeID := dbtest.CreateTestEmployee(t, s.DB, "expiry@example.com", string(employee.RoleAdmin))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, employeeID, employee.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous requests", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/coupons"},
			{http.MethodGet, "/api/orphans"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s must require auth", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestRoleEnforcement() {
	s.Run("viewer cannot provision coupons", func() {
		t := s.T()

		token := authtest.LoginEmployee(t, s.Router, "viewer@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/coupons", map[string]any{}, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("operator cannot run orphan retry", func() {
		t := s.T()

		token := authtest.LoginEmployee(t, s.Router, "operator@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orphans/retry", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
