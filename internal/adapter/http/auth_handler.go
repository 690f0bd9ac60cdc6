package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fieldservice-backend/internal/adapter/middleware"
	userDomain "fieldservice-backend/internal/domain/user"
	"fieldservice-backend/internal/usecase/auth"
	"fieldservice-backend/pkg/token"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

func (h *AuthHandler) Register(c echo.Context) error {
	var req auth.RegisterInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	usr, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, userDomain.ErrEmailTaken) {
			return respondError(c, http.StatusConflict, "email already registered")
		}
		return respondInternal(c, err)
	}
	return respondCreated(c, "user registered", usr)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req auth.LoginInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	usr, pair, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, userDomain.ErrInvalidCredentials) {
			return respondError(c, http.StatusUnauthorized, "invalid email or password")
		}
		return respondInternal(c, err)
	}
	return respondOK(c, "login successful", map[string]any{"user": usr, "token": pair})
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	pair, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) || errors.Is(err, userDomain.ErrNotFound) {
			return respondError(c, http.StatusUnauthorized, "invalid refresh token")
		}
		return respondInternal(c, err)
	}
	return respondOK(c, "token refreshed", pair)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	claims, _ := middleware.ClaimsFrom(c)
	if err := h.uc.Logout(c.Request().Context(), claims); err != nil {
		return respondInternal(c, err)
	}
	return respondOK(c, "logged out", nil)
}

func (h *AuthHandler) Profile(c echo.Context) error {
	usr, ok := middleware.UserFrom(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}
	full, err := h.uc.Profile(c.Request().Context(), usr.ID)
	if err != nil {
		if errors.Is(err, userDomain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "user not found")
		}
		return respondInternal(c, err)
	}
	return respondOK(c, "profile", full)
}
