package component

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hallbook/infras/otel"
	"hallbook/internal/domains/component/model/dto"
	"hallbook/internal/domains/component/service"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"
)

type Handler struct {
	service service.Component
	otel    otel.Otel
}

func New(service service.Component, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/components", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetComponents)
		routerGroup.Put("/{id}", handler.UpdateStatus)
	})
}

// GetComponents retrieves hall infrastructure components.
// @Summary Get hall components
// @Description Retrieve hall infrastructure components. Tech staff only.
// @Tags Component
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetComponentsResponse "List of components"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/components [get]
// @Security BearerAuth
func (handler *Handler) GetComponents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetComponents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	components, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get components")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Components retrieved successfully")

	response.WithJSON(w, http.StatusOK, components)
}

// UpdateStatus updates a component's status and appends a maintenance log entry.
// @Summary Update component status
// @Description Update the status of a hall component. Tech staff only.
// @Tags Component
// @Accept json
// @Produce json
// @Param id path string true "Component ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Component status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/components/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update component status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Component status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Component status updated successfully")
}
