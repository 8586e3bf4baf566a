package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	svix "github.com/svix/svix-webhooks/go"

	"hallbook/config"
	"hallbook/infras/otel"
	"hallbook/internal/domains/user/model"
	"hallbook/internal/domains/user/service"
	"hallbook/shared/constant"
	"hallbook/shared/failure"
	"hallbook/transport/http/response"
)

const (
	eventUserCreated = "user.created"
	eventUserUpdated = "user.updated"
	eventUserDeleted = "user.deleted"
)

type Handler struct {
	service service.User
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.User, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/webhooks", func(routerGroup chi.Router) {
		routerGroup.Post("/identity", handler.HandleIdentityEvent)
	})
}

// HandleIdentityEvent mirrors user lifecycle events from the identity provider.
// The payload signature is verified before any state changes.
// @Summary Handle identity provider webhook
// @Description Process signed user.created, user.updated and user.deleted events.
// @Tags Webhook
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Event processed"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/webhooks/identity [post]
func (handler *Handler) HandleIdentityEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandleIdentityEvent")
	defer scope.End()

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook payload")

		response.WithError(w, failure.BadRequestFromString("unreadable payload"))

		return
	}

	wh, err := svix.NewWebhook(handler.cfg.Webhook.SigningSecret)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initialize webhook verifier")

		response.WithError(w, err)

		return
	}

	if err := wh.Verify(payload, r.Header); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("webhook signature verification failed")

		response.WithError(w, failure.Unauthorized("invalid webhook signature"))

		return
	}

	event := model.ProviderEvent{}
	if err := json.Unmarshal(payload, &event); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode webhook event")

		response.WithError(w, failure.BadRequestFromString("malformed event payload"))

		return
	}

	scope.SetAttribute("webhook.event_type", event.Type)

	switch event.Type {
	case eventUserCreated, eventUserUpdated:
		err = handler.service.UpsertFromProvider(ctx, event.Data)
	case eventUserDeleted:
		err = handler.service.DeleteFromProvider(ctx, event.Data.ID)
	default:
		scope.AddEvent("Ignoring unsupported event type " + event.Type)

		response.WithMessage(w, http.StatusOK, "Event ignored")

		return
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event_type", event.Type).Msg("failed to process identity event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Identity event processed: " + event.Type)

	response.WithMessage(w, http.StatusOK, "Event processed")
}
