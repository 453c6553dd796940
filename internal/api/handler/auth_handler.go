package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeandown/listings-api/internal/api/metrics"
	"github.com/homeandown/listings-api/internal/api/middleware"
	"github.com/homeandown/listings-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		UserType:    req.UserType,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.UserType).Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Token: token,
		User: registeredUser{
			ID:       user.ID,
			Email:    user.Email,
			UserType: user.UserType,
		},
	})
}

// Login authenticates a user and returns a signed token plus the profile.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: loginUser{
			ID:                 user.ID,
			FirstName:          user.FirstName,
			LastName:           user.LastName,
			Email:              user.Email,
			UserType:           user.UserType,
			Status:             user.Status,
			VerificationStatus: user.VerificationStatus,
		},
	})
}

// Me resolves the caller from an optional bearer token. Unlike the guarded
// routes, this endpoint never rejects: every failure path renders
// {user: null, profile: null} with status 200.
//
// @Summary      Identify the current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	empty := meResponse{}

	token := middleware.ExtractBearer(c.Request().Header.Get("Authorization"))
	if token == "" {
		return c.JSON(http.StatusOK, empty)
	}

	user, err := h.authService.Identify(c.Request().Context(), token)
	if err != nil {
		return c.JSON(http.StatusOK, empty)
	}

	return c.JSON(http.StatusOK, meResponse{
		User: &meUser{
			ID:       user.ID,
			Email:    user.Email,
			UserType: user.UserType,
		},
		Profile: &meProfile{
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}
