package model

import "farn/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldRole     = "role"
	FieldContact  = "contact"
)

const (
	RoleReceptionist = "receptionist"
	RoleManager      = "manager"
	RoleHousekeeping = "housekeeping"
	RoleChef         = "chef"
	RoleMaintenance  = "maintenance"
)

type Staff struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	Role     string `db:"role"`
	Contact  string `db:"contact"`
	model.Metadata
}
