package model

import "farn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomType   = "room_type"
	FieldPrice      = "price"
	FieldActive     = "active"
)

const (
	RoomTypeStandard = "standard"
	RoomTypeDeluxe   = "deluxe"
	RoomTypeSuite    = "suite"
	RoomTypeFamily   = "family"
)

type Room struct {
	ID         string  `db:"id"`
	RoomNumber string  `db:"room_number"`
	RoomType   string  `db:"room_type"`
	Price      float64 `db:"price"`
	Active     bool    `db:"active"`
	model.Metadata
}
