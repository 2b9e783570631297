package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"farn/infras/otel"
	"farn/infras/postgres"
	"farn/internal/domains/loyalty/model"
	"farn/shared/constant"
	"farn/shared/logger"
)

const (
	queryGuestPoints = `
		SELECT
			g.id AS guest_id,
			g.full_name AS guest_name,
			g.email,
			COALESCE(lp.points, 0) AS points
		FROM guests g
		LEFT JOIN loyalty_points lp ON lp.guest_id = g.id
		ORDER BY points DESC, guest_name ASC`
)

type Loyalty interface {
	GetGuestPoints(ctx context.Context) ([]model.GuestPoints, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Loyalty {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetGuestPoints(ctx context.Context) (res []model.GuestPoints, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetGuestPoints")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGuestPoints)

	if err = repo.db.Read.SelectContext(ctx, &res, queryGuestPoints); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get guest points (%s): %w", model.EntityName, err)
	}

	return res, nil
}
