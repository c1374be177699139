package conflict

import (
	"net/http"
	"roster/infras/otel"
	"roster/internal/domains/conflict/model/dto"
	"roster/internal/domains/conflict/service"
	"roster/shared/constant"
	gDto "roster/shared/dto"
	"roster/shared/validator"
	"roster/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Conflict
	otel    otel.Otel
}

func New(service service.Conflict, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/conflicts", func(routerGroup chi.Router) {
		routerGroup.Get("/check", handler.CheckConflicts)
		routerGroup.Post("/", handler.RecordConflict)
		routerGroup.Get("/", handler.GetUnresolvedConflicts)
		routerGroup.Post("/{id}/override", handler.OverrideConflict)
	})
}

// CheckConflicts reports double-bookings for a user inside a date range.
// @Summary Check for booking conflicts
// @Description Report every day inside the range on which the user is already booked. Read-only; never blocks a booking.
// @Tags Conflict
// @Accept json
// @Produce json
// @Param user_id query string true "User ID"
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Param exclude_assignment_id query string false "Assignment to exclude from the check"
// @Success 200 {object} response.Data[dto.CheckResult] "Conflict check result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/conflicts/check [get]
func (handler *Handler) CheckConflicts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckConflicts")
	defer scope.End()

	query := request.URL.Query()
	req := dto.CheckRequest{
		UserID:              query.Get("user_id"),
		StartDate:           query.Get("start_date"),
		EndDate:             query.Get("end_date"),
		ExcludeAssignmentID: query.Get("exclude_assignment_id"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Check(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check conflicts")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Conflict check completed")

	response.WithJSON(writer, http.StatusOK, result)
}

// RecordConflict persists a detected clash for later review.
// @Summary Record a booking conflict
// @Description Persist a detected double-booking so it can be reviewed and overridden later.
// @Tags Conflict
// @Accept json
// @Produce json
// @Param request body dto.RecordConflictRequest true "Record Conflict Request"
// @Success 201 {object} response.Data[dto.ConflictResponse] "Conflict recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/conflicts [post]
// @Security BearerAuth
func (handler *Handler) RecordConflict(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordConflict")
	defer scope.End()

	req := dto.RecordConflictRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	conflict, err := handler.service.Record(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record conflict")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Conflict recorded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, conflict)
}

// GetUnresolvedConflicts lists recorded conflicts awaiting review.
// @Summary Get unresolved conflicts
// @Description Retrieve every recorded conflict that has not been overridden, oldest conflict date first.
// @Tags Conflict
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by user ID"
// @Success 200 {object} response.Data[dto.GetConflictsResponse] "List of unresolved conflicts"
// @Failure 500 {object} response.Error
// @Router /v1/conflicts [get]
func (handler *Handler) GetUnresolvedConflicts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnresolvedConflicts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	conflicts, err := handler.service.ListUnresolved(ctx, queryParams, r.URL.Query().Get("user_id"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unresolved conflicts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unresolved conflicts retrieved successfully")

	response.WithJSON(w, http.StatusOK, conflicts)
}

// OverrideConflict accepts a recorded clash with a reason.
// @Summary Override a conflict
// @Description Mark a recorded conflict as resolved, stamping the reason, actor, and time. The record is kept for audit.
// @Tags Conflict
// @Accept json
// @Produce json
// @Param id path string true "Conflict ID"
// @Param request body dto.OverrideConflictRequest true "Override Conflict Request"
// @Success 200 {object} response.Message "Conflict overridden successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/conflicts/{id}/override [post]
// @Security BearerAuth
func (handler *Handler) OverrideConflict(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OverrideConflict")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.OverrideConflictRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Override(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to override conflict")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Conflict overridden successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Conflict overridden successfully")
}
