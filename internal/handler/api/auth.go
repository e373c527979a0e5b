package api

import (
	"errors"
	"net/http"

	reqdto "membership-backoffice/internal/handler/dto/request"
	resdto "membership-backoffice/internal/handler/dto/response"
	"membership-backoffice/internal/handler/httperr"
	"membership-backoffice/internal/handler/middleware"
	"membership-backoffice/internal/pkg/errs"
	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands    commands.AuthCommands
	employeeQueries queries.EmployeeQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, employeeQueries queries.EmployeeQueries) *AuthHandler {
	return &AuthHandler{
		authCommands:    authCommands,
		employeeQueries: employeeQueries,
	}
}

// @Summary Employee login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials),
			errors.Is(err, commands.ErrEmployeeNotFound),
			errors.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", "")
		case errors.Is(err, commands.ErrEmployeeInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", "")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	employee, err := h.employeeQueries.GetCurrentEmployee(c.Request.Context(), result.EmployeeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Employee:    employee,
	})
}

// @Summary Employee logout
// @Description Logout current session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Stateless JWT: clients drop the token, the server has nothing to revoke.
	c.Status(http.StatusNoContent)
}

// @Summary Get current employee
// @Description Get current authenticated employee information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.EmployeeView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	employeeID, ok := middleware.GetEmployeeID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("employee id missing from context"), "Not authenticated", "")
		return
	}

	employee, err := h.employeeQueries.GetCurrentEmployee(c.Request.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEmployeeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", "")
		case errors.Is(err, queries.ErrEmployeeInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", "")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusOK, employee)
}
