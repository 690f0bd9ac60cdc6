package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	catalogDomain "fieldservice-backend/internal/domain/catalog"
	"fieldservice-backend/internal/usecase/catalog"
)

// CatalogHandler serves the four lookup resources: types of work, completion
// statuses, medical device categories and types of health facility. The four
// blocks are structurally identical; per-entity handlers keep routing and
// messages explicit.
type CatalogHandler struct{ uc *catalog.Usecase }

func NewCatalogHandler(uc *catalog.Usecase) *CatalogHandler { return &CatalogHandler{uc: uc} }

func catalogFilter(c echo.Context) catalogDomain.ListFilter {
	page, perPage := pageParams(c)
	return catalogDomain.ListFilter{Search: c.QueryParam("search"), Page: page, PerPage: perPage}
}

func (h *CatalogHandler) respondCatalogErr(c echo.Context, err error, label string) error {
	switch {
	case errors.Is(err, catalogDomain.ErrNotFound):
		return respondError(c, http.StatusNotFound, label+" not found")
	case errors.Is(err, catalogDomain.ErrSlugTaken):
		return respondError(c, http.StatusConflict, "slug already in use")
	}
	return respondInternal(c, err)
}

// ----- types of work -----

func (h *CatalogHandler) ListWorkTypes(c echo.Context) error {
	f := catalogFilter(c)
	items, total, err := h.uc.ListWorkTypes(c.Request().Context(), f)
	if err != nil {
		return respondInternal(c, err)
	}
	return respondPage(c, "types of work", items, f.Page, f.PerPage, total)
}

func (h *CatalogHandler) GetWorkType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	item, err := h.uc.GetWorkType(c.Request().Context(), id)
	if err != nil {
		return h.respondCatalogErr(c, err, "type of work")
	}
	return respondOK(c, "type of work", item)
}

func (h *CatalogHandler) GetWorkTypeBySlug(c echo.Context) error {
	item, err := h.uc.GetWorkTypeBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.respondCatalogErr(c, err, "type of work")
	}
	return respondOK(c, "type of work", item)
}

func (h *CatalogHandler) CreateWorkType(c echo.Context) error {
	var req catalog.CreateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	item, err := h.uc.CreateWorkType(c.Request().Context(), req)
	if err != nil {
		return h.respondCatalogErr(c, err, "type of work")
	}
	return respondCreated(c, "type of work created", item)
}

func (h *CatalogHandler) UpdateWorkType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req catalog.UpdateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.ID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	item, err := h.uc.UpdateWorkType(c.Request().Context(), req)
	if err != nil {
		return h.respondCatalogErr(c, err, "type of work")
	}
	return respondOK(c, "type of work updated", item)
}

func (h *CatalogHandler) DeleteWorkType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.DeleteWorkType(c.Request().Context(), id); err != nil {
		return h.respondCatalogErr(c, err, "type of work")
	}
	return respondOK(c, "type of work deleted", nil)
}

// ----- completion statuses -----

func (h *CatalogHandler) ListCompletionStatuses(c echo.Context) error {
	f := catalogFilter(c)
	items, total, err := h.uc.ListCompletionStatuses(c.Request().Context(), f)
	if err != nil {
		return respondInternal(c, err)
	}
	return respondPage(c, "completion statuses", items, f.Page, f.PerPage, total)
}

func (h *CatalogHandler) GetCompletionStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	item, err := h.uc.GetCompletionStatus(c.Request().Context(), id)
	if err != nil {
		return h.respondCatalogErr(c, err, "completion status")
	}
	return respondOK(c, "completion status", item)
}

func (h *CatalogHandler) GetCompletionStatusBySlug(c echo.Context) error {
	item, err := h.uc.GetCompletionStatusBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.respondCatalogErr(c, err, "completion status")
	}
	return respondOK(c, "completion status", item)
}

func (h *CatalogHandler) CreateCompletionStatus(c echo.Context) error {
	var req catalog.CreateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	item, err := h.uc.CreateCompletionStatus(c.Request().Context(), req)
	if err != nil {
		return h.respondCatalogErr(c, err, "completion status")
	}
	return respondCreated(c, "completion status created", item)
}

func (h *CatalogHandler) UpdateCompletionStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req catalog.UpdateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.ID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	item, err := h.uc.UpdateCompletionStatus(c.Request().Context(), req)
	if err != nil {
		return h.respondCatalogErr(c, err, "completion status")
	}
	return respondOK(c, "completion status updated", item)
}

func (h *CatalogHandler) DeleteCompletionStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.DeleteCompletionStatus(c.Request().Context(), id); err != nil {
		return h.respondCatalogErr(c, err, "completion status")
	}
	return respondOK(c, "completion status deleted", nil)
}

// ----- medical device categories -----

func (h *CatalogHandler) ListDeviceCategories(c echo.Context) error {
	f := catalogFilter(c)
	items, total, err := h.uc.ListDeviceCategories(c.Request().Context(), f)
	if err != nil {
		return respondInternal(c, err)
	}
	return respondPage(c, "medical device categories", items, f.Page, f.PerPage, total)
}

func (h *CatalogHandler) GetDeviceCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	item, err := h.uc.GetDeviceCategory(c.Request().Context(), id)
	if err != nil {
		return h.respondCatalogErr(c, err, "medical device category")
	}
	return respondOK(c, "medical device category", item)
}

func (h *CatalogHandler) GetDeviceCategoryBySlug(c echo.Context) error {
	item, err := h.uc.GetDeviceCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.respondCatalogErr(c, err, "medical device category")
	}
	return respondOK(c, "medical device category", item)
}

func (h *CatalogHandler) CreateDeviceCategory(c echo.Context) error {
	var req catalog.CreateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	item, err := h.uc.CreateDeviceCategory(c.Request().Context(), req)
	if err != nil {
		return h.respondCatalogErr(c, err, "medical device category")
	}
	return respondCreated(c, "medical device category created", item)
}

func (h *CatalogHandler) UpdateDeviceCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req catalog.UpdateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.ID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	item, err := h.uc.UpdateDeviceCategory(c.Request().Context(), req)
	if err != nil {
		return h.respondCatalogErr(c, err, "medical device category")
	}
	return respondOK(c, "medical device category updated", item)
}

func (h *CatalogHandler) DeleteDeviceCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.DeleteDeviceCategory(c.Request().Context(), id); err != nil {
		return h.respondCatalogErr(c, err, "medical device category")
	}
	return respondOK(c, "medical device category deleted", nil)
}

// ----- types of health facility -----

func (h *CatalogHandler) ListFacilityTypes(c echo.Context) error {
	f := catalogFilter(c)
	items, total, err := h.uc.ListFacilityTypes(c.Request().Context(), f)
	if err != nil {
		return respondInternal(c, err)
	}
	return respondPage(c, "types of health facility", items, f.Page, f.PerPage, total)
}

func (h *CatalogHandler) GetFacilityType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	item, err := h.uc.GetFacilityType(c.Request().Context(), id)
	if err != nil {
		return h.respondCatalogErr(c, err, "type of health facility")
	}
	return respondOK(c, "type of health facility", item)
}

func (h *CatalogHandler) GetFacilityTypeBySlug(c echo.Context) error {
	item, err := h.uc.GetFacilityTypeBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.respondCatalogErr(c, err, "type of health facility")
	}
	return respondOK(c, "type of health facility", item)
}

func (h *CatalogHandler) CreateFacilityType(c echo.Context) error {
	var req catalog.CreateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	item, err := h.uc.CreateFacilityType(c.Request().Context(), req)
	if err != nil {
		return h.respondCatalogErr(c, err, "type of health facility")
	}
	return respondCreated(c, "type of health facility created", item)
}

func (h *CatalogHandler) UpdateFacilityType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req catalog.UpdateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.ID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	item, err := h.uc.UpdateFacilityType(c.Request().Context(), req)
	if err != nil {
		return h.respondCatalogErr(c, err, "type of health facility")
	}
	return respondOK(c, "type of health facility updated", item)
}

func (h *CatalogHandler) DeleteFacilityType(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.DeleteFacilityType(c.Request().Context(), id); err != nil {
		return h.respondCatalogErr(c, err, "type of health facility")
	}
	return respondOK(c, "type of health facility deleted", nil)
}
