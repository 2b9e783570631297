package model

import "time"

const (
	TableName  = "loyalty_points"
	EntityName = "loyalty"

	FieldGuestID = "guest_id"
	FieldPoints  = "points"
)

const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

type LoyaltyPoints struct {
	GuestID    string    `db:"guest_id"`
	Points     int       `db:"points"`
	ModifiedAt time.Time `db:"modified_at"`
}

// GuestPoints is the joined projection backing the loyalty dashboard.
type GuestPoints struct {
	GuestID   string `db:"guest_id"`
	GuestName string `db:"guest_name"`
	Email     string `db:"email"`
	Points    int    `db:"points"`
}

// TierFor maps an accumulated point balance to a tier name.
func TierFor(points int) string {
	switch {
	case points >= 1000:
		return TierPlatinum
	case points >= 500:
		return TierGold
	case points >= 100:
		return TierSilver
	default:
		return TierBronze
	}
}
