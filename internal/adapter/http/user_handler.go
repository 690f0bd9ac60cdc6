package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	userDomain "fieldservice-backend/internal/domain/user"
	"fieldservice-backend/internal/usecase/user"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondInternal(c, err)
	}
	return respondOK(c, "users", users)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	usr, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, userDomain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "user not found")
		}
		return respondInternal(c, err)
	}
	return respondOK(c, "user", usr)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req user.UpdateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.ID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	usr, err := h.uc.Update(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, userDomain.ErrNotFound):
			return respondError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, userDomain.ErrEmailTaken):
			return respondError(c, http.StatusConflict, "email already registered")
		}
		return respondInternal(c, err)
	}
	return respondOK(c, "user updated", usr)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, userDomain.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "user not found")
		}
		return respondInternal(c, err)
	}
	return respondOK(c, "user deleted", nil)
}

func (h *UserHandler) ListRoles(c echo.Context) error {
	roles, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return respondInternal(c, err)
	}
	return respondOK(c, "roles", roles)
}

func (h *UserHandler) ListPermissions(c echo.Context) error {
	perms, err := h.uc.ListPermissions(c.Request().Context())
	if err != nil {
		return respondInternal(c, err)
	}
	return respondOK(c, "permissions", perms)
}
