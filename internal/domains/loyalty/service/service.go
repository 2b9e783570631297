package service

import (
	"context"
	"fmt"

	"farn/config"
	"farn/infras/otel"
	"farn/internal/domains/loyalty/model/dto"
	"farn/internal/domains/loyalty/repository"
	"farn/shared/cache"
	"farn/shared/constant"

	"github.com/rs/zerolog/log"
)

const cacheGetAllLoyalty = "loyalty:gets"

type Loyalty interface {
	GetAll(ctx context.Context) (dto.GetLoyaltyResponse, error)
}

type serviceImpl struct {
	repo  repository.Loyalty
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Loyalty, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Loyalty {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetLoyaltyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllLoyalty, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllLoyalty).Msg("cache hit for loyalty dashboard")

		return res, nil
	}

	models, err := s.repo.GetGuestPoints(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get loyalty dashboard")

		return res, fmt.Errorf("failed to get loyalty dashboard: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllLoyalty, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save loyalty dashboard to cache")
		}
	}()

	return res, nil
}
