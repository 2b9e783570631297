package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"farn/config"
	"farn/infras/otel/mocks"
	loyaltyMocks "farn/internal/domains/loyalty/mocks"
	"farn/internal/domains/loyalty/model"
	"farn/internal/domains/loyalty/service"
	cacheMocks "farn/shared/cache/mocks"
)

func TestLoyaltyService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := loyaltyMocks.NewMockLoyalty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	guests := []model.GuestPoints{
		{GuestID: "guest-1", GuestName: "Asha Rao", Email: "asha@example.com", Points: 1200},
		{GuestID: "guest-2", GuestName: "Ravi Menon", Email: "ravi@example.com", Points: 750},
		{GuestID: "guest-3", GuestName: "Lena Das", Email: "lena@example.com", Points: 40},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTiers []string
	}{
		{
			name: "cache miss, tiers derived from points",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetGuestPoints(gomock.Any()).
					Return(guests, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTiers: []string{model.TierPlatinum, model.TierGold, model.TierBronze},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetGuestPoints(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, len(tt.wantTiers), res.TotalData)

			for i, tier := range tt.wantTiers {
				assert.Equal(t, tier, res.Guests[i].Tier)
			}
		})
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{0, model.TierBronze},
		{99, model.TierBronze},
		{100, model.TierSilver},
		{499, model.TierSilver},
		{500, model.TierGold},
		{999, model.TierGold},
		{1000, model.TierPlatinum},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.TierFor(tt.points))
	}
}
