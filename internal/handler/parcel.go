package handler

import (
	"encoding/json"
	"io"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/errs"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/middleware"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/model/parcel"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/server"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ParcelHandler serves POST /api/parcels. The body names an action and the
// handler routes it to the matching ActionHandler.
type ParcelHandler struct {
	Handler
	parcelService *service.ParcelService
	actions       map[string]ActionHandler
}

func NewParcelHandler(s *server.Server, parcelService *service.ParcelService) *ParcelHandler {
	h := &ParcelHandler{
		Handler:       NewHandler(s),
		parcelService: parcelService,
	}

	h.actions = map[string]ActionHandler{
		parcel.ActionCreateParcel: Action(h.Handler, parcel.ActionCreateParcel, h.CreateParcel,
			func() *parcel.CreateParcelRequest { return &parcel.CreateParcelRequest{} }),
		parcel.ActionGetParcel: Action(h.Handler, parcel.ActionGetParcel, h.GetParcel,
			func() *parcel.GetParcelRequest { return &parcel.GetParcelRequest{} }),
	}

	return h
}

// Dispatch reads the body once, resolves the action and runs it.
//
//   - unreadable body, invalid JSON, a non-object, null or {} -> 400 Invalid JSON data
//   - missing or non-string action -> treated as ""
//   - unknown action -> 400 Unknown action
func (h *ParcelHandler) Dispatch(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errs.NewInvalidJSONError(nil)
	}

	action, err := readAction(body)
	if err != nil {
		return err
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute("parcel.action", action)
	}

	run, ok := h.actions[action]
	if !ok {
		middleware.GetLogger(c).Warn().
			Str("action", action).
			Msg("unknown action")
		return errs.NewBadRequestError(errs.MessageUnknownAction, false, nil, nil)
	}

	return run(c, body)
}

// readAction parses body as a non-empty JSON object and returns its "action".
func readAction(body []byte) (string, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope) == 0 {
		return "", errs.NewInvalidJSONError(nil)
	}

	var action string
	if raw, ok := envelope["action"]; ok {
		if err := json.Unmarshal(raw, &action); err != nil {
			action = ""
		}
	}

	return action, nil
}

func (h *ParcelHandler) CreateParcel(c echo.Context, req *parcel.CreateParcelRequest) (*parcel.CreateParcelResponse, error) {
	return h.parcelService.CreateParcel(c.Request().Context(), req)
}

func (h *ParcelHandler) GetParcel(c echo.Context, req *parcel.GetParcelRequest) (*parcel.GetParcelResponse, error) {
	return h.parcelService.GetParcel(c.Request().Context(), req)
}
