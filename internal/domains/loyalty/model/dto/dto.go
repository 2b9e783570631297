package dto

import (
	"farn/internal/domains/loyalty/model"
)

type GuestPointsResponse struct {
	GuestID   string `json:"guest_id"`
	GuestName string `json:"guest_name"`
	Email     string `json:"email"`
	Points    int    `json:"points"`
	Tier      string `json:"tier"`
}

func (r *GuestPointsResponse) FromModel(model model.GuestPoints) {
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.Email = model.Email
	r.Points = model.Points
}

type GetLoyaltyResponse struct {
	Guests    []GuestPointsResponse `json:"guests"`
	TotalData int                   `json:"total_data"`
}

func (r *GetLoyaltyResponse) FromModels(models []model.GuestPoints) {
	r.TotalData = len(models)

	r.Guests = make([]GuestPointsResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
		r.Guests[i].Tier = model.TierFor(mod.Points)
	}
}
