package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	reportDomain "fieldservice-backend/internal/domain/report"
	"fieldservice-backend/internal/infrastructure/storage"
	"fieldservice-backend/internal/usecase/report"
)

// maxUploadSize caps each uploaded signature or part image.
const maxUploadSize = 5 << 20

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

type ReportHandler struct {
	uc    *report.Usecase
	store storage.Store
}

func NewReportHandler(uc *report.Usecase, store storage.Store) *ReportHandler {
	return &ReportHandler{uc: uc, store: store}
}

func (h *ReportHandler) respondErr(c echo.Context, err error) error {
	var fe *report.FieldError
	if errors.As(err, &fe) {
		return respondValidation(c, []FieldError{{Field: fe.Field, Message: fe.Message}})
	}
	switch {
	case errors.Is(err, reportDomain.ErrNotFound):
		return respondError(c, http.StatusNotFound, "report not found")
	case errors.Is(err, reportDomain.ErrDetailNotFound):
		return respondError(c, http.StatusNotFound, "report detail not found")
	case errors.Is(err, reportDomain.ErrNumberTaken):
		return respondError(c, http.StatusConflict, "report number already in use")
	case errors.Is(err, reportDomain.ErrAlreadyCompleted):
		return respondError(c, http.StatusConflict, "report has already been completed")
	case errors.Is(err, reportDomain.ErrDetailExists):
		return respondError(c, http.StatusConflict, "report detail already exists")
	case errors.Is(err, reportDomain.ErrLocationMissing):
		return respondValidation(c, []FieldError{{Field: "report_id", Message: "report has no location record"}})
	}
	return respondInternal(c, err)
}

// ----- response shaping -----

// Signature and image columns hold stored names/keys only; the payload types
// add resolved URLs next to them.

type detailPayload struct {
	*reportDomain.ReportDetail
	AttendanceEmployeeURL *string `json:"attendance_employee_url,omitempty"`
	AttendanceCustomerURL *string `json:"attendance_customer_url,omitempty"`
}

type partImagePayload struct {
	reportDomain.PartUsedForImage
	ImageURL string `json:"image_url"`
}

type partPayload struct {
	reportDomain.PartUsedForRepair
	Images []partImagePayload `json:"images"`
}

type reportPayload struct {
	*reportDomain.Report
	Detail    *detailPayload `json:"detail,omitempty"`
	PartsUsed []partPayload  `json:"parts_used,omitempty"`
}

func (h *ReportHandler) payload(rep *reportDomain.Report) *reportPayload {
	out := &reportPayload{Report: rep}
	if rep.Detail != nil {
		d := &detailPayload{ReportDetail: rep.Detail}
		if name := rep.Detail.AttendanceEmployee; name != nil {
			u := h.store.URL(storage.FolderEmployeeSignatures, *name)
			d.AttendanceEmployeeURL = &u
		}
		if name := rep.Detail.AttendanceCustomer; name != nil {
			u := h.store.URL(storage.FolderCustomerSignatures, *name)
			d.AttendanceCustomerURL = &u
		}
		out.Detail = d
	}
	for _, part := range rep.PartsUsed {
		pp := partPayload{PartUsedForRepair: part, Images: []partImagePayload{}}
		for _, img := range part.Images {
			folder, name := splitStoredKey(img.Image)
			pp.Images = append(pp.Images, partImagePayload{
				PartUsedForImage: img,
				ImageURL:         h.store.URL(folder, name),
			})
		}
		out.PartsUsed = append(out.PartsUsed, pp)
	}
	return out
}

func splitStoredKey(key string) (folder, name string) {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}

// ----- handlers -----

func (h *ReportHandler) List(c echo.Context) error {
	page, perPage := pageParams(c)
	f := reportDomain.ListFilter{Search: c.QueryParam("search"), Page: page, PerPage: perPage}
	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "invalid user_id")
		}
		f.UserID = id
	}
	items, total, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondInternal(c, err)
	}
	return respondPage(c, "reports", items, page, perPage, total)
}

func (h *ReportHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	rep, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "report", h.payload(rep))
}

func (h *ReportHandler) PreviewNumber(c echo.Context) error {
	return respondOK(c, "next report number", map[string]string{
		"report_number": h.uc.PreviewNumber(c.Request().Context()),
	})
}

func (h *ReportHandler) ListByEmployee(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	items, err := h.uc.ListByEmployee(c.Request().Context(), id)
	if err != nil {
		return respondInternal(c, err)
	}
	return respondOK(c, "reports", items)
}

func (h *ReportHandler) Submit(c echo.Context) error {
	var req report.SubmitInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	rep, err := h.uc.Submit(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondCreated(c, "report submitted", h.payload(rep))
}

func (h *ReportHandler) Complete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	var req report.CompleteInput
	closers, err := h.bindComplete(c, &req)
	defer closeAll(closers)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	req.ReportID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}

	rep, err := h.uc.Complete(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "report completed", h.payload(rep))
}

func (h *ReportHandler) UpdateDetail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	var req report.UpdateDetailInput
	closers, err := h.bindUpdateDetail(c, &req)
	defer closeAll(closers)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	req.ReportID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}

	rep, err := h.uc.UpdateDetail(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "report detail updated", h.payload(rep))
}

func (h *ReportHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	var req report.UpdateInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid body")
	}
	req.ReportID = id
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, ToFieldErrors(err))
	}
	rep, err := h.uc.Update(c.Request().Context(), req)
	if err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "report updated", h.payload(rep))
}

func (h *ReportHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return h.respondErr(c, err)
	}
	return respondOK(c, "report deleted", nil)
}

// ServeSignature streams a stored signature image. The folder segment is
// restricted to the two known signature folders.
func (h *ReportHandler) ServeSignature(c echo.Context) error {
	var folder string
	switch c.Param("type") {
	case "employee_signatures":
		folder = storage.FolderEmployeeSignatures
	case "customer_signatures":
		folder = storage.FolderCustomerSignatures
	default:
		return respondError(c, http.StatusNotFound, "unknown signature type")
	}
	name := c.Param("file")
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return respondError(c, http.StatusBadRequest, "invalid file name")
	}
	rc, err := h.store.Open(folder, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "file not found")
		}
		return respondInternal(c, err)
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Stream(http.StatusOK, contentType, rc)
}

// ----- multipart binding -----

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func closeAll(closers []io.Closer) {
	for _, cl := range closers {
		cl.Close()
	}
}

// openUpload validates and opens one multipart file.
func openUpload(fh *multipart.FileHeader) (*report.FileUpload, io.Closer, error) {
	if fh.Size > maxUploadSize {
		return nil, nil, fmt.Errorf("%s exceeds the %d byte limit", fh.Filename, maxUploadSize)
	}
	if !allowedImageExt[strings.ToLower(filepath.Ext(fh.Filename))] {
		return nil, nil, fmt.Errorf("%s is not an accepted image type", fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &report.FileUpload{Name: fh.Filename, Content: f}, f, nil
}

func firstFile(form *multipart.Form, key string) *multipart.FileHeader {
	if fhs := form.File[key]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func optFormValue(form *multipart.Form, key string) *string {
	if vs := form.Value[key]; len(vs) > 0 {
		v := vs[0]
		return &v
	}
	return nil
}

// bindComplete reads the completion payload from either a JSON body or a
// multipart form. Multipart carries scalar fields as form values, the
// parameters and parts_used arrays as JSON-encoded form fields, and files
// under attendance_employee, attendance_customer and parts_used.<i>.images.
func (h *ReportHandler) bindComplete(c echo.Context, req *report.CompleteInput) ([]io.Closer, error) {
	if !isMultipart(c) {
		if err := c.Bind(req); err != nil {
			return nil, errors.New("invalid body")
		}
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.New("invalid multipart form")
	}
	var closers []io.Closer

	if raw := formValue(form, "completion_status_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return closers, errors.New("invalid completion_status_id")
		}
		req.CompletionStatusID = id
	}
	req.Note = optFormValue(form, "note")
	req.Suggestion = optFormValue(form, "suggestion")
	req.CustomerName = optFormValue(form, "customer_name")
	req.CustomerPhone = optFormValue(form, "customer_phone")
	req.Latitude = formValue(form, "latitude")
	req.Longitude = formValue(form, "longitude")
	req.Address = formValue(form, "address")

	if raw := formValue(form, "parameters"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Parameters); err != nil {
			return closers, errors.New("parameters must be a JSON array")
		}
	}
	if raw := formValue(form, "parts_used"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.PartsUsed); err != nil {
			return closers, errors.New("parts_used must be a JSON array")
		}
	}

	if fh := firstFile(form, "attendance_employee"); fh != nil {
		up, cl, err := openUpload(fh)
		if err != nil {
			return closers, err
		}
		closers = append(closers, cl)
		req.EmployeeSignature = up
	}
	if fh := firstFile(form, "attendance_customer"); fh != nil {
		up, cl, err := openUpload(fh)
		if err != nil {
			return closers, err
		}
		closers = append(closers, cl)
		req.CustomerSignature = up
	}
	for i := range req.PartsUsed {
		for _, fh := range form.File[fmt.Sprintf("parts_used.%d.images", i)] {
			up, cl, err := openUpload(fh)
			if err != nil {
				return closers, err
			}
			closers = append(closers, cl)
			req.PartsUsed[i].Images = append(req.PartsUsed[i].Images, *up)
		}
	}
	return closers, nil
}

func (h *ReportHandler) bindUpdateDetail(c echo.Context, req *report.UpdateDetailInput) ([]io.Closer, error) {
	if !isMultipart(c) {
		if err := c.Bind(req); err != nil {
			return nil, errors.New("invalid body")
		}
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.New("invalid multipart form")
	}
	var closers []io.Closer

	if raw := formValue(form, "completion_status_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return closers, errors.New("invalid completion_status_id")
		}
		req.CompletionStatusID = &id
	}
	req.Note = optFormValue(form, "note")
	req.Suggestion = optFormValue(form, "suggestion")
	req.CustomerName = optFormValue(form, "customer_name")
	req.CustomerPhone = optFormValue(form, "customer_phone")
	req.RemoveEmployeeSignature = formValue(form, "remove_employee_signature") == "true"
	req.RemoveCustomerSignature = formValue(form, "remove_customer_signature") == "true"

	if fh := firstFile(form, "attendance_employee"); fh != nil {
		up, cl, err := openUpload(fh)
		if err != nil {
			return closers, err
		}
		closers = append(closers, cl)
		req.EmployeeSignature = up
	}
	if fh := firstFile(form, "attendance_customer"); fh != nil {
		up, cl, err := openUpload(fh)
		if err != nil {
			return closers, err
		}
		closers = append(closers, cl)
		req.CustomerSignature = up
	}
	return closers, nil
}
