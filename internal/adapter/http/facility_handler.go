package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	facilityDomain "fieldservice-backend/internal/domain/facility"
	"fieldservice-backend/internal/usecase/facility"
)

type FacilityHandler struct{ uc *facility.Usecase }

func NewFacilityHandler(uc *facility.Usecase) *FacilityHandler { return &FacilityHandler{uc: uc} }

func (h *FacilityHandler) respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, facilityDomain.ErrNotFound):
		return respondError(c, http.StatusNotFound, "health facility not found")
	case errors.Is(err, facilityDomain.ErrSlugTaken):
		return respondError(c, http.StatusConflict, "slug already in use")
	case errors.Is(err, facility.ErrUnknownType):
		return respondValidation(c, []FieldError{{Field: "type_of_health_facility_id", Message: "does not reference an existing facility type"}})
	}
	return respondInternal(c, err)
}

func (h *FacilityHandler) List(c echo.Context) error {
	page, perPage := pageParams(c)
	f := facilityDomain.ListFilter{Search: c.QueryParam("search"), Page: page, PerPage: perPage}
	// ?type_ids=1,2,3
	if raw := c.QueryParam("type_ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return respondError(c, http.StatusBadRequest, "invalid type_ids")
			}
			f.TypeIDs = append(f.TypeIDs, id)
		}
	}
	items, total, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondInternal(c, err)
	}
	return respondPage(c, "health facilities", items, page, perPage, total)
}

func (h *FacilityHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	hf, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "health facility", hf)
}

func (h *FacilityHandler) GetBySlug(c echo.Context) error {
	hf, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "health facility", hf)
}

func (h *FacilityHandler) Create(c echo.Context) error {
	var req facility.CreateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	hf, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondCreated(c, "health facility created", hf)
}

func (h *FacilityHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req facility.UpdateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.ID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	hf, err := h.uc.Update(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "health facility updated", hf)
}

func (h *FacilityHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "health facility deleted", nil)
}

type attachDevicesReq struct {
	MedicalDeviceIDs []uint64 `json:"medical_device_ids" validate:"required,min=1"`
}

func (h *FacilityHandler) AttachDevices(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req attachDevicesReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	hf, err := h.uc.AttachDevices(c.Request().Context(), id, req.MedicalDeviceIDs)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "devices attached", hf)
}

func (h *FacilityHandler) DetachDevice(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	deviceID, err := pathID(c, "device_id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.DetachDevice(c.Request().Context(), id, deviceID); err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "device detached", nil)
}
