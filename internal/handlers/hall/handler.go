package hall

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hallbook/infras/otel"
	"hallbook/internal/domains/hall/service"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/transport/http/response"
)

type Handler struct {
	service service.Hall
	otel    otel.Otel
}

func New(service service.Hall, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/halls", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHalls)
		routerGroup.Get("/{id}", handler.GetHallByID)
	})
}

// GetHalls retrieves the seminar halls visible to the caller.
// @Summary Get seminar halls
// @Description Retrieve seminar halls, scoped to the caller's department when one is assigned.
// @Tags Hall
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetHallsResponse "List of seminar halls"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls [get]
// @Security BearerAuth
func (handler *Handler) GetHalls(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHalls")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	halls, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get halls")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Halls retrieved successfully")

	response.WithJSON(w, http.StatusOK, halls)
}

// GetHallByID retrieves one hall with its equipment, components and recent bookings.
// @Summary Get a seminar hall by ID
// @Description Retrieve a hall's detail bundle: equipment, components and recent approved bookings.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} dto.HallDetailResponse "Hall details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/halls/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHallByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hall, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall retrieved successfully")

	response.WithJSON(w, http.StatusOK, hall)
}
