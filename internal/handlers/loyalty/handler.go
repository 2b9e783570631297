package loyalty

import (
	"net/http"

	"farn/infras/otel"
	"farn/internal/domains/loyalty/service"
	"farn/shared/constant"
	"farn/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Loyalty
	otel    otel.Otel
}

func New(service service.Loyalty, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/loyalty", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLoyalty)
	})
}

// GetLoyalty retrieves the loyalty dashboard.
// @Summary Get the loyalty dashboard
// @Description List every guest with their accumulated points and tier.
// @Tags Loyalty
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetLoyaltyResponse] "Loyalty dashboard"
// @Failure 500 {object} response.Error
// @Router /v1/loyalty [get]
func (handler *Handler) GetLoyalty(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLoyalty")
	defer scope.End()

	loyalty, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get loyalty dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Loyalty dashboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, loyalty)
}
