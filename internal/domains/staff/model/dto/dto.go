package dto

import (
	"farn/internal/domains/staff/model"
	"farn/shared"
	gDto "farn/shared/dto"
	gModel "farn/shared/model"
	"farn/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Role     string `json:"role"      validate:"required,oneof=receptionist manager housekeeping chef maintenance"`
	Contact  string `json:"contact"   validate:"required,len=10,numeric"`
}

func (c *CreateStaffRequest) ToModel(user string) model.Staff {
	return model.Staff{
		ID:       uuid.NewString(),
		FullName: c.FullName,
		Role:     c.Role,
		Contact:  c.Contact,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStaffRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Role     string `db:"role"      json:"role"      validate:"omitempty,oneof=receptionist manager housekeeping chef maintenance"`
	Contact  string `db:"contact"   json:"contact"   validate:"omitempty,len=10,numeric"`
}

type StaffResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Contact  string `json:"contact"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Role = model.Role
	r.Contact = model.Contact
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
