package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldservice-backend/internal/domain/catalog"
	reportDomain "fieldservice-backend/internal/domain/report"
	"fieldservice-backend/internal/domain/uow"
	"fieldservice-backend/internal/infrastructure/storage"
)

// FieldError is a usecase-level validation failure tied to one input field;
// the HTTP layer renders it as a 422.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + " " + e.Message }

func fieldErr(field, message string) error { return &FieldError{Field: field, Message: message} }

// submitRetries bounds the re-allocation loop when two same-day submissions
// race on the same report number; the unique index surfaces the loser.
const submitRetries = 3

type Usecase struct {
	repo  reportDomain.Repository
	uow   uow.UnitOfWork
	store storage.Store
}

func NewUsecase(repo reportDomain.Repository, tx uow.UnitOfWork, store storage.Store) *Usecase {
	return &Usecase{repo: repo, uow: tx, store: store}
}

// PreviewNumber returns the next report number without allocating it.
func (u *Usecase) PreviewNumber(ctx context.Context) string {
	return nextNumber(ctx, u.repo, time.Now())
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*reportDomain.Report, error) {
	rep, err := u.repo.GetWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}
	return rep, nil
}

func (u *Usecase) List(ctx context.Context, f reportDomain.ListFilter) ([]reportDomain.Report, int64, error) {
	return u.repo.List(ctx, f)
}

func (u *Usecase) ListByEmployee(ctx context.Context, employeeID uint64) ([]reportDomain.Report, error) {
	return u.repo.ListByEmployee(ctx, employeeID)
}

// Submit creates a report with its location and the (device x work type)
// cross product of device items, all in one transaction.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*reportDomain.Report, error) {
	var created *reportDomain.Report

	attempt := func() error {
		return u.uow.WithinTx(ctx, func(r uow.Repos) error {
			if err := u.checkSubmitRefs(ctx, r, in); err != nil {
				return err
			}

			number := in.ReportNumber
			if number == "" {
				number = nextNumber(ctx, r.Reports, time.Now())
			} else {
				taken, err := r.Reports.NumberExists(ctx, number)
				if err != nil {
					return err
				}
				if taken {
					return reportDomain.ErrNumberTaken
				}
			}

			rep := &reportDomain.Report{
				UserID:           in.UserID,
				EmployeeID:       in.EmployeeID,
				HealthFacilityID: in.HealthFacilityID,
				ReportNumber:     number,
				Problem:          in.Problem,
				ErrorCode:        in.ErrorCode,
				JobAction:        in.JobAction,
				Status:           reportDomain.StatusProgress,
			}
			if err := r.Reports.Create(ctx, rep); err != nil {
				return err
			}

			if err := r.Reports.CreateLocation(ctx, &reportDomain.Location{
				ReportID:  rep.ID,
				Latitude:  in.Latitude,
				Longitude: in.Longitude,
				Address:   in.Address,
			}); err != nil {
				return err
			}

			for _, dw := range in.DeviceWorks {
				for _, workID := range dw.TypeOfWorkIDs {
					if err := r.Reports.CreateDeviceItem(ctx, &reportDomain.ReportDeviceItem{
						ReportID:        rep.ID,
						MedicalDeviceID: dw.MedicalDeviceID,
						TypeOfWorkID:    workID,
					}); err != nil {
						return err
					}
				}
			}

			created = rep
			return nil
		})
	}

	var err error
	for i := 0; i < submitRetries; i++ {
		err = attempt()
		// re-allocate only when our generated number lost a same-day race
		if err == nil || in.ReportNumber != "" || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, reportDomain.ErrNumberTaken
		}
		return nil, err
	}
	return u.repo.GetWithRelations(ctx, created.ID)
}

func (u *Usecase) checkSubmitRefs(ctx context.Context, r uow.Repos, in SubmitInput) error {
	if _, err := r.Users.GetByID(ctx, in.UserID); err != nil {
		return refErr(err, "user_id", "does not reference an existing user")
	}
	if _, err := r.Employees.GetByID(ctx, in.EmployeeID); err != nil {
		return refErr(err, "employee_id", "does not reference an existing employee")
	}
	if _, err := r.Facilities.GetByID(ctx, in.HealthFacilityID); err != nil {
		return refErr(err, "health_facility_id", "does not reference an existing health facility")
	}
	for i, dw := range in.DeviceWorks {
		if _, err := r.Devices.GetByID(ctx, dw.MedicalDeviceID); err != nil {
			return refErr(err, fmt.Sprintf("device_works.%d.medical_device_id", i), "does not reference an existing medical device")
		}
		for j, workID := range dw.TypeOfWorkIDs {
			if _, err := r.Catalog.GetWorkTypeByID(ctx, workID); err != nil {
				return refErr(err, fmt.Sprintf("device_works.%d.type_of_work_ids.%d", i, j), "does not reference an existing type of work")
			}
		}
	}
	return nil
}

func refErr(err error, field, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fieldErr(field, message)
	}
	return err
}

// storedFile tracks a blob written during a transaction so it can be removed
// if the transaction rolls back. A crash between store and rollback still
// leaks the file; file writes are not part of the database transaction.
type storedFile struct{ folder, name string }

// Complete runs the one-time completion workflow: location overwrite,
// signatures, detail, parameters, parts with images and the status
// transition, all inside one unit of work.
func (u *Usecase) Complete(ctx context.Context, in CompleteInput) (*reportDomain.Report, error) {
	var stored []storedFile

	err := u.uow.WithinReportTx(ctx, in.ReportID, func(r uow.Repos, rep *reportDomain.Report) error {
		if rep.Status == reportDomain.StatusCompleted {
			return reportDomain.ErrAlreadyCompleted
		}
		if _, err := r.Reports.GetDetailByReportID(ctx, rep.ID); err == nil {
			return reportDomain.ErrDetailExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := r.Catalog.GetCompletionStatusByID(ctx, in.CompletionStatusID); err != nil {
			return refErr(err, "completion_status_id", "does not reference an existing completion status")
		}

		// the location row was created at submission; its absence means the
		// report is corrupt, not that one should be created here
		loc, err := r.Reports.GetLocationByReportID(ctx, rep.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return reportDomain.ErrLocationMissing
			}
			return err
		}
		loc.Latitude = in.Latitude
		loc.Longitude = in.Longitude
		loc.Address = in.Address
		if err := r.Reports.SaveLocation(ctx, loc); err != nil {
			return err
		}

		var empSig, custSig *string
		if in.EmployeeSignature != nil {
			name, err := u.storeSignature(rep.ID, storage.FolderEmployeeSignatures, *in.EmployeeSignature)
			if err != nil {
				return err
			}
			stored = append(stored, storedFile{storage.FolderEmployeeSignatures, name})
			empSig = &name
		}
		if in.CustomerSignature != nil {
			name, err := u.storeSignature(rep.ID, storage.FolderCustomerSignatures, *in.CustomerSignature)
			if err != nil {
				return err
			}
			stored = append(stored, storedFile{storage.FolderCustomerSignatures, name})
			custSig = &name
		}

		if err := r.Reports.CreateDetail(ctx, &reportDomain.ReportDetail{
			ReportID:           rep.ID,
			CompletionStatusID: in.CompletionStatusID,
			Note:               in.Note,
			Suggestion:         in.Suggestion,
			CustomerName:       in.CustomerName,
			CustomerPhone:      in.CustomerPhone,
			AttendanceEmployee: empSig,
			AttendanceCustomer: custSig,
		}); err != nil {
			return err
		}

		for _, p := range in.Parameters {
			if err := r.Reports.CreateParameter(ctx, &reportDomain.Parameter{
				ReportID:    rep.ID,
				Name:        p.Name,
				Uraian:      p.Uraian,
				Description: p.Description,
			}); err != nil {
				return err
			}
		}

		partFolder := fmt.Sprintf("part_images/report_%d", rep.ID)
		for _, part := range in.PartsUsed {
			// the part row is created even when no images are attached
			row := &reportDomain.PartUsedForRepair{
				ReportID: rep.ID,
				Uraian:   part.Uraian,
				Quantity: part.Quantity,
			}
			if err := r.Reports.CreatePart(ctx, row); err != nil {
				return err
			}
			for _, img := range part.Images {
				name := uuid.NewString() + fileExt(img.Name)
				key, err := u.store.Save(partFolder, name, img.Content)
				if err != nil {
					return fmt.Errorf("store part image: %w", err)
				}
				stored = append(stored, storedFile{partFolder, name})
				if err := r.Reports.CreatePartImage(ctx, &reportDomain.PartUsedForImage{
					PartUsedForRepairID: row.ID,
					Image:               key,
				}); err != nil {
					return err
				}
			}
		}

		switch in.CompletionStatusID {
		case catalog.CompletionStatusResolved:
			now := time.Now()
			totalTime := formatElapsed(now.Sub(rep.CreatedAt))
			rep.Status = reportDomain.StatusCompleted
			rep.CompletedAt = &now
			rep.TotalTime = &totalTime
		case catalog.CompletionStatusUnresolved:
			rep.Status = reportDomain.StatusPending
			rep.CompletedAt = nil
			rep.TotalTime = nil
		default:
			// only statuses 1 and 2 transition the report; anything else
			// keeps the current status, logged so the skip is visible
			log.Printf("report %d: completion status %d has no status transition, leaving %q",
				rep.ID, in.CompletionStatusID, rep.Status)
			return nil
		}
		return r.Reports.Save(ctx, rep)
	})

	if err != nil {
		u.removeStored(stored)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}
	return u.repo.GetWithRelations(ctx, in.ReportID)
}

// UpdateDetail patches the post-completion detail record: text fields plus
// independent replace/remove of either signature.
func (u *Usecase) UpdateDetail(ctx context.Context, in UpdateDetailInput) (*reportDomain.Report, error) {
	err := u.uow.WithinReportTx(ctx, in.ReportID, func(r uow.Repos, rep *reportDomain.Report) error {
		detail, err := r.Reports.GetDetailByReportID(ctx, rep.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return reportDomain.ErrDetailNotFound
			}
			return err
		}

		if in.RemoveEmployeeSignature {
			u.deleteSignature(storage.FolderEmployeeSignatures, detail.AttendanceEmployee)
			detail.AttendanceEmployee = nil
		}
		if in.RemoveCustomerSignature {
			u.deleteSignature(storage.FolderCustomerSignatures, detail.AttendanceCustomer)
			detail.AttendanceCustomer = nil
		}
		if in.EmployeeSignature != nil {
			u.deleteSignature(storage.FolderEmployeeSignatures, detail.AttendanceEmployee)
			name, err := u.storeSignature(rep.ID, storage.FolderEmployeeSignatures, *in.EmployeeSignature)
			if err != nil {
				return err
			}
			detail.AttendanceEmployee = &name
		}
		if in.CustomerSignature != nil {
			u.deleteSignature(storage.FolderCustomerSignatures, detail.AttendanceCustomer)
			name, err := u.storeSignature(rep.ID, storage.FolderCustomerSignatures, *in.CustomerSignature)
			if err != nil {
				return err
			}
			detail.AttendanceCustomer = &name
		}

		if in.CompletionStatusID != nil {
			if _, err := r.Catalog.GetCompletionStatusByID(ctx, *in.CompletionStatusID); err != nil {
				return refErr(err, "completion_status_id", "does not reference an existing completion status")
			}
			detail.CompletionStatusID = *in.CompletionStatusID
		}
		if in.Note != nil {
			detail.Note = in.Note
		}
		if in.Suggestion != nil {
			detail.Suggestion = in.Suggestion
		}
		if in.CustomerName != nil {
			detail.CustomerName = in.CustomerName
		}
		if in.CustomerPhone != nil {
			detail.CustomerPhone = in.CustomerPhone
		}
		return r.Reports.SaveDetail(ctx, detail)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}
	return u.repo.GetWithRelations(ctx, in.ReportID)
}

// Update patches the base report fields; foreign keys are re-checked when
// they change.
func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*reportDomain.Report, error) {
	err := u.uow.WithinReportTx(ctx, in.ReportID, func(r uow.Repos, rep *reportDomain.Report) error {
		if in.UserID != nil {
			if _, err := r.Users.GetByID(ctx, *in.UserID); err != nil {
				return refErr(err, "user_id", "does not reference an existing user")
			}
			rep.UserID = *in.UserID
		}
		if in.EmployeeID != nil {
			if _, err := r.Employees.GetByID(ctx, *in.EmployeeID); err != nil {
				return refErr(err, "employee_id", "does not reference an existing employee")
			}
			rep.EmployeeID = *in.EmployeeID
		}
		if in.HealthFacilityID != nil {
			if _, err := r.Facilities.GetByID(ctx, *in.HealthFacilityID); err != nil {
				return refErr(err, "health_facility_id", "does not reference an existing health facility")
			}
			rep.HealthFacilityID = *in.HealthFacilityID
		}
		if in.ReportNumber != nil && *in.ReportNumber != rep.ReportNumber {
			taken, err := r.Reports.NumberExists(ctx, *in.ReportNumber)
			if err != nil {
				return err
			}
			if taken {
				return reportDomain.ErrNumberTaken
			}
			rep.ReportNumber = *in.ReportNumber
		}
		if in.Problem != nil {
			rep.Problem = *in.Problem
		}
		if in.ErrorCode != nil {
			rep.ErrorCode = *in.ErrorCode
		}
		if in.JobAction != nil {
			rep.JobAction = *in.JobAction
		}
		return r.Reports.Save(ctx, rep)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportDomain.ErrNotFound
		}
		return nil, err
	}
	return u.repo.GetWithRelations(ctx, in.ReportID)
}

// Delete removes the report and its children, then sweeps the stored
// signature and part-image files.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	var toRemove []storedFile

	err := u.uow.WithinReportTx(ctx, id, func(r uow.Repos, rep *reportDomain.Report) error {
		full, err := r.Reports.GetWithRelations(ctx, rep.ID)
		if err != nil {
			return err
		}
		if full.Detail != nil {
			if full.Detail.AttendanceEmployee != nil {
				toRemove = append(toRemove, storedFile{storage.FolderEmployeeSignatures, *full.Detail.AttendanceEmployee})
			}
			if full.Detail.AttendanceCustomer != nil {
				toRemove = append(toRemove, storedFile{storage.FolderCustomerSignatures, *full.Detail.AttendanceCustomer})
			}
		}
		for _, part := range full.PartsUsed {
			for _, img := range part.Images {
				folder, name := splitKey(img.Image)
				toRemove = append(toRemove, storedFile{folder, name})
			}
		}
		return r.Reports.Delete(ctx, rep)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reportDomain.ErrNotFound
		}
		return err
	}
	// rows are gone; file removal is best effort
	u.removeStored(toRemove)
	return nil
}

func (u *Usecase) storeSignature(reportID uint64, folder string, f FileUpload) (string, error) {
	name := fmt.Sprintf("signature_%d_%s_%s_%s%s",
		reportID, filepath.Base(folder), time.Now().Format("20060102150405"), uuid.NewString(), fileExt(f.Name))
	if _, err := u.store.Save(folder, name, f.Content); err != nil {
		return "", fmt.Errorf("store signature: %w", err)
	}
	return name, nil
}

func (u *Usecase) deleteSignature(folder string, name *string) {
	if name == nil || *name == "" {
		return
	}
	if err := u.store.Delete(folder, *name); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("delete signature %s/%s: %v", folder, *name, err)
	}
}

func (u *Usecase) removeStored(files []storedFile) {
	for _, f := range files {
		if err := u.store.Delete(f.folder, f.name); err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.Printf("remove stored file %s/%s: %v", f.folder, f.name, err)
		}
	}
}

func fileExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

func splitKey(key string) (folder, name string) {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return "", key
	}
	return key[:i], key[i+1:]
}
