package employee

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "fieldservice-backend/internal/domain/employee"
	userDomain "fieldservice-backend/internal/domain/user"
)

type Usecase struct {
	repo  domain.Repository
	users userDomain.Repository
}

func NewUsecase(repo domain.Repository, users userDomain.Repository) *Usecase {
	return &Usecase{repo: repo, users: users}
}

var (
	ErrUnknownUser     = errors.New("user_id does not reference an existing user")
	ErrUnknownRegion   = errors.New("region_id does not reference an existing region")
	ErrUnknownDivision = errors.New("division_id does not reference an existing division")
	ErrUnknownPosition = errors.New("position_id does not reference an existing position")
)

type CreateInput struct {
	UserID         uint64     `json:"user_id" validate:"required"`
	RegionID       uint64     `json:"region_id" validate:"required"`
	DivisionID     uint64     `json:"division_id" validate:"required"`
	PositionID     uint64     `json:"position_id" validate:"required"`
	EmployeeNumber string     `json:"employee_number" validate:"required,max=50"`
	NIK            string     `json:"nik" validate:"required,len=16,numeric"`
	Name           string     `json:"name" validate:"required,max=255"`
	Gender         string     `json:"gender" validate:"omitempty,oneof=male female"`
	PlaceOfBirth   string     `json:"place_of_birth" validate:"omitempty,max=255"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	PhoneNumber    string     `json:"phone_number" validate:"omitempty,max=20"`
	Email          string     `json:"email" validate:"omitempty,email,max=255"`
	Address        string     `json:"address" validate:"omitempty,max=255"`
	Status         string     `json:"status" validate:"omitempty,max=50"`
	DateOfEntry    *time.Time `json:"date_of_entry"`
	IsActive       *bool      `json:"is_active"`
	Photo          string     `json:"photo" validate:"omitempty,max=255"`
}

type UpdateInput struct {
	ID             uint64
	UserID         *uint64    `json:"user_id"`
	RegionID       *uint64    `json:"region_id"`
	DivisionID     *uint64    `json:"division_id"`
	PositionID     *uint64    `json:"position_id"`
	EmployeeNumber *string    `json:"employee_number" validate:"omitempty,max=50"`
	NIK            *string    `json:"nik" validate:"omitempty,len=16,numeric"`
	Name           *string    `json:"name" validate:"omitempty,max=255"`
	Gender         *string    `json:"gender" validate:"omitempty,oneof=male female"`
	PlaceOfBirth   *string    `json:"place_of_birth" validate:"omitempty,max=255"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	PhoneNumber    *string    `json:"phone_number" validate:"omitempty,max=20"`
	Email          *string    `json:"email" validate:"omitempty,email,max=255"`
	Address        *string    `json:"address" validate:"omitempty,max=255"`
	Status         *string    `json:"status" validate:"omitempty,max=50"`
	DateOfEntry    *time.Time `json:"date_of_entry"`
	IsActive       *bool      `json:"is_active"`
	Photo          *string    `json:"photo" validate:"omitempty,max=255"`
}

func (u *Usecase) checkRefs(ctx context.Context, userID, regionID, divisionID, positionID uint64) error {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownUser
		}
		return err
	}
	if _, err := u.repo.GetRegionByID(ctx, regionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownRegion
		}
		return err
	}
	if _, err := u.repo.GetDivisionByID(ctx, divisionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownDivision
		}
		return err
	}
	if _, err := u.repo.GetPositionByID(ctx, positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownPosition
		}
		return err
	}
	return nil
}

func (u *Usecase) List(ctx context.Context, f domain.ListFilter) ([]domain.Employee, int64, error) {
	return u.repo.List(ctx, f)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.Employee, error) {
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Employee, error) {
	if err := u.checkRefs(ctx, in.UserID, in.RegionID, in.DivisionID, in.PositionID); err != nil {
		return nil, err
	}
	if taken, err := u.repo.NIKExists(ctx, in.NIK, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrNIKTaken
	}
	if taken, err := u.repo.NumberExists(ctx, in.EmployeeNumber, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrNumberTaken
	}

	e := &domain.Employee{
		UserID:         in.UserID,
		RegionID:       in.RegionID,
		DivisionID:     in.DivisionID,
		PositionID:     in.PositionID,
		EmployeeNumber: in.EmployeeNumber,
		NIK:            in.NIK,
		Name:           in.Name,
		Gender:         in.Gender,
		PlaceOfBirth:   in.PlaceOfBirth,
		DateOfBirth:    in.DateOfBirth,
		PhoneNumber:    in.PhoneNumber,
		Email:          in.Email,
		Address:        in.Address,
		Status:         in.Status,
		DateOfEntry:    in.DateOfEntry,
		IsActive:       true,
		Photo:          in.Photo,
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*domain.Employee, error) {
	e, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	userID, regionID, divisionID, positionID := e.UserID, e.RegionID, e.DivisionID, e.PositionID
	if in.UserID != nil {
		userID = *in.UserID
	}
	if in.RegionID != nil {
		regionID = *in.RegionID
	}
	if in.DivisionID != nil {
		divisionID = *in.DivisionID
	}
	if in.PositionID != nil {
		positionID = *in.PositionID
	}
	if err := u.checkRefs(ctx, userID, regionID, divisionID, positionID); err != nil {
		return nil, err
	}
	e.UserID, e.RegionID, e.DivisionID, e.PositionID = userID, regionID, divisionID, positionID

	if in.NIK != nil && *in.NIK != e.NIK {
		if taken, err := u.repo.NIKExists(ctx, *in.NIK, e.ID); err != nil {
			return nil, err
		} else if taken {
			return nil, domain.ErrNIKTaken
		}
		e.NIK = *in.NIK
	}
	if in.EmployeeNumber != nil && *in.EmployeeNumber != e.EmployeeNumber {
		if taken, err := u.repo.NumberExists(ctx, *in.EmployeeNumber, e.ID); err != nil {
			return nil, err
		} else if taken {
			return nil, domain.ErrNumberTaken
		}
		e.EmployeeNumber = *in.EmployeeNumber
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Gender != nil {
		e.Gender = *in.Gender
	}
	if in.PlaceOfBirth != nil {
		e.PlaceOfBirth = *in.PlaceOfBirth
	}
	if in.DateOfBirth != nil {
		e.DateOfBirth = in.DateOfBirth
	}
	if in.PhoneNumber != nil {
		e.PhoneNumber = *in.PhoneNumber
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Address != nil {
		e.Address = *in.Address
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.DateOfEntry != nil {
		e.DateOfEntry = in.DateOfEntry
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
	if in.Photo != nil {
		e.Photo = *in.Photo
	}
	if err := u.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, e)
}

func (u *Usecase) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return u.repo.ListRegions(ctx)
}

func (u *Usecase) ListDivisions(ctx context.Context) ([]domain.Division, error) {
	return u.repo.ListDivisions(ctx)
}

func (u *Usecase) ListPositions(ctx context.Context) ([]domain.Position, error) {
	return u.repo.ListPositions(ctx)
}
