package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	deviceDomain "fieldservice-backend/internal/domain/device"
	"fieldservice-backend/internal/usecase/device"
)

type DeviceHandler struct{ uc *device.Usecase }

func NewDeviceHandler(uc *device.Usecase) *DeviceHandler { return &DeviceHandler{uc: uc} }

func (h *DeviceHandler) respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, deviceDomain.ErrNotFound):
		return respondError(c, http.StatusNotFound, "medical device not found")
	case errors.Is(err, deviceDomain.ErrSerialTaken):
		return respondError(c, http.StatusConflict, "serial number already registered")
	case errors.Is(err, device.ErrUnknownCategory):
		return respondValidation(c, []FieldError{{Field: "medical_device_category_id", Message: "does not reference an existing category"}})
	}
	return respondInternal(c, err)
}

func (h *DeviceHandler) List(c echo.Context) error {
	page, perPage := pageParams(c)
	f := deviceDomain.ListFilter{Search: c.QueryParam("search"), Page: page, PerPage: perPage}
	items, total, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondInternal(c, err)
	}
	return respondPage(c, "medical devices", items, page, perPage, total)
}

func (h *DeviceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	dev, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "medical device", dev)
}

func (h *DeviceHandler) Create(c echo.Context) error {
	var req device.CreateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	dev, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondCreated(c, "medical device created", dev)
}

func (h *DeviceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req device.UpdateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.ID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	dev, err := h.uc.Update(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "medical device updated", dev)
}

func (h *DeviceHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "medical device deleted", nil)
}
