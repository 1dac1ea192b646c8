package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/j88moja/inventory-system/internal/api/metrics"
	"github.com/j88moja/inventory-system/internal/api/middleware"
	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

// AuthHandler serves sign-up, sign-in and the password reset handshake.
type AuthHandler struct {
	creds  ports.CredentialService
	resets ports.ResetService
}

func NewAuthHandler(creds ports.CredentialService, resets ports.ResetService) *AuthHandler {
	return &AuthHandler{creds: creds, resets: resets}
}

// Register creates a new user account and signs it in.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, session, err := h.creds.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.Inc()

	setSessionCookie(c, session)
	return c.JSON(http.StatusCreated, toUserResponse(user, session.Token))
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("invalid payload")
	}

	user, session, err := h.creds.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	setSessionCookie(c, session)
	return c.JSON(http.StatusOK, toUserResponse(user, session.Token))
}

// Logout expires the session cookie.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/users/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "successfully logged out"})
}

// LoginStatus reports whether the caller holds a valid session.
//
// @Summary      Login status
// @Tags         users
// @Produce      json
// @Success      200  {boolean}  boolean
// @Router       /api/users/loggedin [get]
func (h *AuthHandler) LoginStatus(c echo.Context) error {
	token := middleware.SessionToken(c)
	if token == "" {
		return c.JSON(http.StatusOK, false)
	}
	return c.JSON(http.StatusOK, h.creds.LoginStatus(token))
}

// ForgotPassword emails a single-use reset link.
//
// @Summary      Request a password reset
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/forgotpassword [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("invalid payload")
	}

	err := h.resets.RequestReset(c.Request().Context(), req.Email)
	metrics.ResetRequestsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "reset email sent"})
}

// ResetPassword redeems a reset credential and sets a new password.
//
// @Summary      Reset password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        resetToken  path      string                true  "Reset credential from the email link"
// @Param        body        body      resetPasswordRequest  true  "New password"
// @Success      200         {object}  messageResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/users/resetpassword/{resetToken} [put]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("invalid payload")
	}

	err := h.resets.ConsumeReset(c.Request().Context(), c.Param("resetToken"), req.Password)
	if !errors.Is(err, domain.ErrValidation) {
		metrics.ResetRedemptionsTotal.WithLabelValues(metrics.Result(err)).Inc()
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password reset successful, please login"})
}
