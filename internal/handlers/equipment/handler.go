package equipment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hallbook/infras/otel"
	"hallbook/internal/domains/equipment/model/dto"
	"hallbook/internal/domains/equipment/service"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"
)

type Handler struct {
	service service.Equipment
	otel    otel.Otel
}

func New(service service.Equipment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/equipment", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEquipment)
		routerGroup.Patch("/", handler.UpdateCondition)
	})
}

// GetEquipment retrieves equipment in the caller's assigned halls.
// @Summary Get equipment
// @Description Retrieve equipment in the halls assigned to the calling tech staff.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetEquipmentResponse "List of equipment"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment [get]
// @Security BearerAuth
func (handler *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipment")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	equipment, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment retrieved successfully")

	response.WithJSON(w, http.StatusOK, equipment)
}

// UpdateCondition updates an equipment item's condition and appends a log entry.
// @Summary Update equipment condition
// @Description Update the condition of an equipment item in an assigned hall. Tech staff only.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param request body dto.UpdateConditionRequest true "Update Condition Request"
// @Success 200 {object} response.Message "Equipment condition updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCondition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCondition")
	defer scope.End()

	req := dto.UpdateConditionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateCondition(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update equipment condition")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Equipment condition updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Equipment condition updated successfully")
}
