package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	reportDomain "fieldservice-backend/internal/domain/report"
	"fieldservice-backend/internal/domain/uow"
)

func TestGormUoW_RollsBackOnError(t *testing.T) {
	gdb := testDB(t)
	seedBase(t, gdb)
	txm := NewGormUoW(gdb)
	ctx := context.Background()

	boom := errors.New("boom")
	err := txm.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Reports.Create(ctx, &reportDomain.Report{
			UserID: 1, EmployeeID: 1, HealthFacilityID: 1,
			ReportNumber: "RPT-20250314-001", Status: reportDomain.StatusProgress,
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	var n int64
	if err := gdb.Model(&reportDomain.Report{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("report persisted after rollback")
	}
}

func TestGormUoW_CommitsOnSuccess(t *testing.T) {
	gdb := testDB(t)
	seedBase(t, gdb)
	txm := NewGormUoW(gdb)
	ctx := context.Background()

	err := txm.WithinTx(ctx, func(r uow.Repos) error {
		return r.Reports.Create(ctx, &reportDomain.Report{
			UserID: 1, EmployeeID: 1, HealthFacilityID: 1,
			ReportNumber: "RPT-20250314-001", Status: reportDomain.StatusProgress,
		})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	var n int64
	if err := gdb.Model(&reportDomain.Report{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("report count = %d, want 1", n)
	}
}

func TestGormUoW_WithinReportTx(t *testing.T) {
	gdb := testDB(t)
	seedBase(t, gdb)
	txm := NewGormUoW(gdb)
	ctx := context.Background()

	rep := seedReport(t, gdb, "RPT-20250314-001")

	err := txm.WithinReportTx(ctx, rep.ID, func(r uow.Repos, locked *reportDomain.Report) error {
		if locked.ID != rep.ID {
			t.Fatalf("loaded report %d, want %d", locked.ID, rep.ID)
		}
		locked.Status = reportDomain.StatusPending
		return r.Reports.Save(ctx, locked)
	})
	if err != nil {
		t.Fatalf("WithinReportTx: %v", err)
	}

	var got reportDomain.Report
	if err := gdb.First(&got, rep.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != reportDomain.StatusPending {
		t.Fatalf("status = %s, want Pending", got.Status)
	}
}

func TestGormUoW_WithinReportTx_MissingReport(t *testing.T) {
	gdb := testDB(t)
	seedBase(t, gdb)
	txm := NewGormUoW(gdb)

	called := false
	err := txm.WithinReportTx(context.Background(), 99, func(uow.Repos, *reportDomain.Report) error {
		called = true
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
	if called {
		t.Fatalf("callback ran for a missing report")
	}
}
