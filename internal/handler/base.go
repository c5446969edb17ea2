package handler

import (
	"net/http"
	"time"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/lib/utils"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/middleware"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/server"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/sqlerr"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (ParcelHandler, HealthHandler, ...) so they
// can reach config, logger and stores through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// ActionFunc is a typed action: it receives a decoded and validated request
// and returns the response body or an error.
//
// Req is a pointer type so the body can be decoded into it.
type ActionFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ActionHandler runs one action against a request body that was already read
// by the dispatcher.
type ActionHandler func(c echo.Context, body []byte) error

// handleAction is the shared execution pipeline for every action:
//
//   - decode + validate the body
//   - structured logging with the request-scoped logger
//   - New Relic attributes and noticed errors
//   - timing (validation, action, total)
//   - response writing with the API content type
func handleAction[Req validation.Validatable](
	h Handler,
	c echo.Context,
	name string,
	body []byte,
	req Req,
	action func(c echo.Context, req Req) (interface{}, error),
) error {
	start := time.Now()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("action.name", name)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "action").
		Str("action", name).
		Logger()

	logger.Info().Msg("handling action")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.DecodeAndValidate(body, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	// ---------------- Action execution phase ---------------------------------
	actionStart := time.Now()
	result, err := action(c, req)
	actionDuration := time.Since(actionStart)

	if threshold := h.slowThreshold(); threshold > 0 && actionDuration > threshold {
		logger.Warn().
			Dur("action_duration", actionDuration).
			Dur("threshold", threshold).
			Msg("slow action")
	}

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("action_duration", actionDuration).
			Dur("total_duration", totalDuration).
			Msg("action execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("action.status", "error")
			txn.AddAttribute("action.duration_ms", actionDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}

		// Constraint violations become 400, everything else 500 with the failure text.
		return sqlerr.HandleError(err)
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("action.status", "success")
		txn.AddAttribute("action.duration_ms", actionDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	logger.Info().
		Dur("action_duration", actionDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("action completed successfully")

	// Every action answers 200, including bodies that carry success=false.
	return utils.WriteJSON(c, http.StatusOK, result)
}

func (h Handler) slowThreshold() time.Duration {
	if h.server == nil || h.server.Config == nil || h.server.Config.Observability == nil {
		return 0
	}
	return h.server.Config.Observability.Logging.SlowQueryThreshold
}

// Action adapts a typed ActionFunc into an ActionHandler.
//
// newReq returns a fresh request value per call; request values are never
// shared between concurrent requests.
//
//	Action(h, "create_parcel", ph.CreateParcel, func() *parcel.CreateParcelRequest {
//		return &parcel.CreateParcelRequest{}
//	})
func Action[Req validation.Validatable, Res any](
	h Handler,
	name string,
	action ActionFunc[Req, Res],
	newReq func() Req,
) ActionHandler {
	return func(c echo.Context, body []byte) error {
		return handleAction(h, c, name, body, newReq(), func(c echo.Context, req Req) (interface{}, error) {
			return action(c, req)
		})
	}
}
