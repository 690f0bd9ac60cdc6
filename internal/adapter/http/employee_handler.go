package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	employeeDomain "fieldservice-backend/internal/domain/employee"
	"fieldservice-backend/internal/usecase/employee"
)

type EmployeeHandler struct{ uc *employee.Usecase }

func NewEmployeeHandler(uc *employee.Usecase) *EmployeeHandler { return &EmployeeHandler{uc: uc} }

func (h *EmployeeHandler) respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, employeeDomain.ErrNotFound):
		return respondError(c, http.StatusNotFound, "employee not found")
	case errors.Is(err, employeeDomain.ErrNIKTaken):
		return respondError(c, http.StatusConflict, "nik already registered")
	case errors.Is(err, employeeDomain.ErrNumberTaken):
		return respondError(c, http.StatusConflict, "employee number already registered")
	case errors.Is(err, employee.ErrUnknownUser):
		return respondValidation(c, []FieldError{{Field: "user_id", Message: "does not reference an existing user"}})
	case errors.Is(err, employee.ErrUnknownRegion):
		return respondValidation(c, []FieldError{{Field: "region_id", Message: "does not reference an existing region"}})
	case errors.Is(err, employee.ErrUnknownDivision):
		return respondValidation(c, []FieldError{{Field: "division_id", Message: "does not reference an existing division"}})
	case errors.Is(err, employee.ErrUnknownPosition):
		return respondValidation(c, []FieldError{{Field: "position_id", Message: "does not reference an existing position"}})
	}
	return respondInternal(c, err)
}

func (h *EmployeeHandler) List(c echo.Context) error {
	page, perPage := pageParams(c)
	f := employeeDomain.ListFilter{Search: c.QueryParam("search"), Page: page, PerPage: perPage}
	items, total, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondInternal(c, err)
	}
	return respondPage(c, "employees", items, page, perPage, total)
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	emp, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "employee", emp)
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employee.CreateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	emp, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondCreated(c, "employee created", emp)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req employee.UpdateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.ID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	emp, err := h.uc.Update(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "employee updated", emp)
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "employee deleted", nil)
}

func (h *EmployeeHandler) ListRegions(c echo.Context) error {
	items, err := h.uc.ListRegions(c.Request().Context())
	if err != nil {
		return respondInternal(c, err)
	}
	return respondOK(c, "regions", items)
}

func (h *EmployeeHandler) ListDivisions(c echo.Context) error {
	items, err := h.uc.ListDivisions(c.Request().Context())
	if err != nil {
		return respondInternal(c, err)
	}
	return respondOK(c, "divisions", items)
}

func (h *EmployeeHandler) ListPositions(c echo.Context) error {
	items, err := h.uc.ListPositions(c.Request().Context())
	if err != nil {
		return respondInternal(c, err)
	}
	return respondOK(c, "positions", items)
}
