package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fieldservice-backend/internal/adapter/repository/mysql"
	"fieldservice-backend/internal/domain/catalog"
	"fieldservice-backend/internal/domain/device"
	"fieldservice-backend/internal/domain/employee"
	"fieldservice-backend/internal/domain/facility"
	"fieldservice-backend/internal/domain/user"
	"fieldservice-backend/internal/infrastructure/db"
	"fieldservice-backend/internal/infrastructure/storage"
	"fieldservice-backend/internal/usecase/report"
)

const testBaseURL = "http://api.test"

type reportEnv struct {
	e       *echo.Echo
	handler *ReportHandler
	gdb     *gorm.DB
	dir     string
}

func newReportEnv(t *testing.T) *reportEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := db.OpenGormWithDialector(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rows := []any{
		&user.User{ID: 1, Name: "Admin", Email: "admin@example.com", Password: "x"},
		&employee.Region{ID: 1, Name: "Jakarta", Slug: "jakarta"},
		&employee.Division{ID: 1, Name: "Field Service", Slug: "field-service"},
		&employee.Position{ID: 1, Name: "Technician", Slug: "technician"},
		&employee.Employee{
			ID: 1, UserID: 1, RegionID: 1, DivisionID: 1, PositionID: 1,
			EmployeeNumber: "EMP-001", NIK: "3171234567890001", Name: "Budi", IsActive: true,
		},
		&catalog.TypeOfHealthFacility{ID: 1, Name: "Rumah Sakit", Slug: "rumah-sakit"},
		&facility.HealthFacility{ID: 1, TypeOfHealthFacilityID: 1, Name: "RS Harapan", Slug: "rs-harapan"},
		&catalog.MedicalDeviceCategory{ID: 1, Name: "Imaging", Slug: "imaging"},
		&device.MedicalDevice{ID: 1, MedicalDeviceCategoryID: 1, Brand: "GE", Model: "X100", SerialNumber: "SN-001", Status: 1},
		&device.MedicalDevice{ID: 2, MedicalDeviceCategoryID: 1, Brand: "Philips", Model: "M7", SerialNumber: "SN-002", Status: 1},
		&catalog.TypeOfWork{ID: 1, Name: "Perbaikan", Slug: "perbaikan"},
		&catalog.TypeOfWork{ID: 2, Name: "Kalibrasi", Slug: "kalibrasi"},
		&catalog.CompletionStatus{ID: catalog.CompletionStatusResolved, Name: "Selesai", Slug: "selesai"},
		&catalog.CompletionStatus{ID: catalog.CompletionStatusUnresolved, Name: "Belum Selesai", Slug: "belum-selesai"},
	}
	for _, row := range rows {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("seed %T: %v", row, err)
		}
	}

	dir := t.TempDir()
	store := storage.NewLocalStore(dir, testBaseURL)
	repo := mysql.NewReportRepository(gdb)
	uc := report.NewUsecase(repo, mysql.NewGormUoW(gdb), store)

	e := echo.New()
	e.Validator = NewValidator()
	return &reportEnv{e: e, handler: NewReportHandler(uc, store), gdb: gdb, dir: dir}
}

func (env *reportEnv) jsonReq(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.e.NewContext(req, rec)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := decodeEnvelope(t, rec)["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %s", rec.Body.String())
	}
	return data
}

func submitBody() map[string]any {
	return map[string]any{
		"user_id":            1,
		"employee_id":        1,
		"health_facility_id": 1,
		"problem":            "monitor mati",
		"job_action":         "ganti power supply",
		"latitude":           "-6.2",
		"longitude":          "106.8",
		"address":            "Jl. Sudirman 1",
		"device_works": []map[string]any{
			{"medical_device_id": 1, "type_of_work_ids": []uint64{1, 2}},
			{"medical_device_id": 2, "type_of_work_ids": []uint64{1}},
		},
	}
}

func submitReport(t *testing.T, env *reportEnv) uint64 {
	t.Helper()
	rec, c := env.jsonReq(http.MethodPost, "/reports", submitBody())
	if err := env.handler.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d body=%s", rec.Code, rec.Body.String())
	}
	return uint64(dataOf(t, rec)["id"].(float64))
}

// completeForm builds the multipart completion payload with both signatures
// and one part image.
func completeForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"completion_status_id": "1",
		"note":                 "power supply diganti",
		"customer_name":        "Ibu Sari",
		"latitude":             "-6.21",
		"longitude":            "106.81",
		"address":              "Jl. Sudirman 1, lobi",
		"parameters":           `[{"name":"tegangan","uraian":"220V"}]`,
		"parts_used":           `[{"uraian":"power supply","quantity":1}]`,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for key, name := range map[string]string{
		"attendance_employee": "employee.png",
		"attendance_customer": "customer.png",
		"parts_used.0.images": "part.jpg",
	} {
		fw, err := w.CreateFormFile(key, name)
		if err != nil {
			t.Fatalf("create form file %s: %v", key, err)
		}
		io.WriteString(fw, "fake image bytes")
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func completeReport(t *testing.T, env *reportEnv, id uint64) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := completeForm(t)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/reports/%d/complete", id), body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(id))
	if err := env.handler.Complete(c); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	return rec
}

func TestSubmitThenComplete(t *testing.T) {
	env := newReportEnv(t)

	rec, c := env.jsonReq(http.MethodPost, "/reports", submitBody())
	if err := env.handler.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d body=%s", rec.Code, rec.Body.String())
	}
	data := dataOf(t, rec)
	if got := data["status"]; got != "Progress" {
		t.Fatalf("status = %v, want Progress", got)
	}
	number, _ := data["report_number"].(string)
	if !regexp.MustCompile(`^RPT-\d{8}-\d{3}$`).MatchString(number) {
		t.Fatalf("report_number = %q", number)
	}
	items, _ := data["device_items"].([]any)
	if len(items) != 3 {
		t.Fatalf("device_items = %d, want 3 (cross product)", len(items))
	}
	id := uint64(data["id"].(float64))

	rec = completeReport(t, env, id)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete status = %d body=%s", rec.Code, rec.Body.String())
	}
	data = dataOf(t, rec)
	if got := data["status"]; got != "Completed" {
		t.Fatalf("status = %v, want Completed", got)
	}
	if data["completed_at"] == nil {
		t.Fatalf("completed_at not set")
	}
	totalTime, _ := data["total_time"].(string)
	if !regexp.MustCompile(`^\d{2,}:\d{2}:\d{2}$`).MatchString(totalTime) {
		t.Fatalf("total_time = %q", totalTime)
	}

	detail, _ := data["detail"].(map[string]any)
	if detail == nil {
		t.Fatalf("no detail in response")
	}
	empURL, _ := detail["attendance_employee_url"].(string)
	if !strings.HasPrefix(empURL, testBaseURL+"/storage/signatures/employee_signatures/") {
		t.Fatalf("attendance_employee_url = %q", empURL)
	}
	custURL, _ := detail["attendance_customer_url"].(string)
	if !strings.HasPrefix(custURL, testBaseURL+"/storage/signatures/customer_signatures/") {
		t.Fatalf("attendance_customer_url = %q", custURL)
	}

	// both signature blobs must be on disk under the generated names
	empName, _ := detail["attendance_employee"].(string)
	if _, err := os.Stat(filepath.Join(env.dir, "signatures/employee_signatures", empName)); err != nil {
		t.Fatalf("employee signature not stored: %v", err)
	}

	parts, _ := data["parts_used"].([]any)
	if len(parts) != 1 {
		t.Fatalf("parts_used = %d, want 1", len(parts))
	}
	images, _ := parts[0].(map[string]any)["images"].([]any)
	if len(images) != 1 {
		t.Fatalf("part images = %d, want 1", len(images))
	}
	imgURL, _ := images[0].(map[string]any)["image_url"].(string)
	if !strings.HasPrefix(imgURL, testBaseURL+"/storage/part_images/report_") {
		t.Fatalf("image_url = %q", imgURL)
	}

	params, _ := data["parameters"].([]any)
	if len(params) != 1 {
		t.Fatalf("parameters = %d, want 1", len(params))
	}

	// the completion location overwrites the submission one
	loc, _ := data["location"].(map[string]any)
	if loc == nil || loc["address"] != "Jl. Sudirman 1, lobi" {
		t.Fatalf("location not overwritten: %v", loc)
	}
}

func TestComplete_SecondAttemptConflicts(t *testing.T) {
	env := newReportEnv(t)
	id := submitReport(t, env)

	if rec := completeReport(t, env, id); rec.Code != http.StatusOK {
		t.Fatalf("first complete status = %d", rec.Code)
	}
	if rec := completeReport(t, env, id); rec.Code != http.StatusConflict {
		t.Fatalf("second complete status = %d, want 409", rec.Code)
	}
}

func TestSubmit_MissingFieldsRejected(t *testing.T) {
	env := newReportEnv(t)

	body := submitBody()
	delete(body, "job_action")
	rec, c := env.jsonReq(http.MethodPost, "/reports", body)
	if err := env.handler.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	envl := decodeEnvelope(t, rec)
	if envl["status"] != false {
		t.Fatalf("envelope status = %v, want false", envl["status"])
	}
	if envl["errors"] == nil {
		t.Fatalf("no errors array in %s", rec.Body.String())
	}
}

func TestSubmit_UnknownDeviceRejected(t *testing.T) {
	env := newReportEnv(t)

	body := submitBody()
	body["device_works"] = []map[string]any{{"medical_device_id": 99, "type_of_work_ids": []uint64{1}}}
	rec, c := env.jsonReq(http.MethodPost, "/reports", body)
	if err := env.handler.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body=%s, want 422", rec.Code, rec.Body.String())
	}
}

func TestGetReport_NotFound(t *testing.T) {
	env := newReportEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/reports/42", nil)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := env.handler.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPreviewNumberEndpoint(t *testing.T) {
	env := newReportEnv(t)
	submitReport(t, env)

	req := httptest.NewRequest(http.MethodGet, "/report/preview-number", nil)
	rec := httptest.NewRecorder()
	if err := env.handler.PreviewNumber(env.e.NewContext(req, rec)); err != nil {
		t.Fatalf("PreviewNumber: %v", err)
	}
	number, _ := dataOf(t, rec)["report_number"].(string)
	if !strings.HasSuffix(number, "-002") {
		t.Fatalf("preview number = %q, want suffix -002", number)
	}
}

func TestDeleteReport_SweepsStoredFiles(t *testing.T) {
	env := newReportEnv(t)
	id := submitReport(t, env)

	rec := completeReport(t, env, id)
	detail, _ := dataOf(t, rec)["detail"].(map[string]any)
	empName, _ := detail["attendance_employee"].(string)
	empPath := filepath.Join(env.dir, "signatures/employee_signatures", empName)
	if _, err := os.Stat(empPath); err != nil {
		t.Fatalf("signature missing before delete: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/reports/%d", id), nil)
	del := httptest.NewRecorder()
	c := env.e.NewContext(req, del)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(id))
	if err := env.handler.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if del.Code != http.StatusOK {
		t.Fatalf("delete status = %d", del.Code)
	}
	if _, err := os.Stat(empPath); !os.IsNotExist(err) {
		t.Fatalf("signature still on disk after delete")
	}
}

func TestServeSignature(t *testing.T) {
	env := newReportEnv(t)
	id := submitReport(t, env)
	rec := completeReport(t, env, id)
	detail, _ := dataOf(t, rec)["detail"].(map[string]any)
	empName, _ := detail["attendance_employee"].(string)

	req := httptest.NewRequest(http.MethodGet, "/storage/signatures/employee_signatures/"+empName, nil)
	out := httptest.NewRecorder()
	c := env.e.NewContext(req, out)
	c.SetParamNames("type", "file")
	c.SetParamValues("employee_signatures", empName)
	if err := env.handler.ServeSignature(c); err != nil {
		t.Fatalf("ServeSignature: %v", err)
	}
	if out.Code != http.StatusOK {
		t.Fatalf("status = %d", out.Code)
	}
	if out.Body.String() != "fake image bytes" {
		t.Fatalf("body = %q", out.Body.String())
	}

	out = httptest.NewRecorder()
	c = env.e.NewContext(httptest.NewRequest(http.MethodGet, "/storage/signatures/employee_signatures/nope.png", nil), out)
	c.SetParamNames("type", "file")
	c.SetParamValues("employee_signatures", "nope.png")
	if err := env.handler.ServeSignature(c); err != nil {
		t.Fatalf("ServeSignature: %v", err)
	}
	if out.Code != http.StatusNotFound {
		t.Fatalf("missing file status = %d, want 404", out.Code)
	}
}
