package assignment

import (
	"encoding/json"
	"net/http"
	"roster/infras/otel"
	"roster/internal/domains/assignment/model"
	"roster/internal/domains/assignment/model/dto"
	"roster/internal/domains/assignment/service"
	"roster/shared/constant"
	gDto "roster/shared/dto"
	"roster/shared/validator"
	"roster/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Assignment
	otel    otel.Otel
}

func New(service service.Assignment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assignments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAssignment)
		routerGroup.Get("/", handler.GetAssignments)
		routerGroup.Get("/{id}", handler.GetAssignmentByID)
		routerGroup.Patch("/{id}", handler.UpdateAssignment)
		routerGroup.Delete("/{id}", handler.DeleteAssignment)
		routerGroup.Post("/{id}/status", handler.CycleStatus)
		routerGroup.Get("/{id}/history", handler.GetStatusHistory)
		routerGroup.Get("/{id}/dates", handler.GetActiveDates)
		routerGroup.Post("/{id}/days", handler.AddDays)
		routerGroup.Patch("/days/{dayId}", handler.UpdateDay)
		routerGroup.Delete("/days", handler.RemoveDays)
	})
}

// CreateAssignment books a person onto a project.
// @Summary Create a new assignment
// @Description Book a person onto a project. Conflict checking is a separate, explicit call.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param request body dto.CreateAssignmentRequest true "Create Assignment Request"
// @Success 201 {object} response.Data[dto.AssignmentResponse] "Assignment created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments [post]
// @Security BearerAuth
func (handler *Handler) CreateAssignment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAssignment")
	defer scope.End()

	req := dto.CreateAssignmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	assignment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create assignment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Assignment created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, assignment)
}

// GetAssignments retrieves all assignments based on query parameters.
// @Summary Get all assignments
// @Description Retrieve all assignments with optional filtering and pagination.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param project_id query string false "Filter by project ID"
// @Param user_id query string false "Filter by user ID"
// @Param booking_status query string false "Filter by booking status (tentative, pending_confirmation, confirmed)"
// @Success 200 {object} response.Data[dto.AssignmentResponse] "List of assignments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments [get]
func (handler *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	projectID := r.URL.Query().Get(model.FieldProjectID)
	userID := r.URL.Query().Get(model.FieldUserID)
	bookingStatus := r.URL.Query().Get(model.FieldBookingStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if projectID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldProjectID,
			Operator: gDto.FilterOperatorEq,
			Value:    projectID,
			Table:    model.TableName,
		})
	}

	if userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	if bookingStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingStatus,
			Table:    model.TableName,
		})
	}

	assignments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assignments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Assignments retrieved successfully")

	response.WithJSON(w, http.StatusOK, assignments)
}

// GetAssignmentByID retrieves an assignment with its day records.
// @Summary Get an assignment by ID
// @Description Retrieve an assignment, its day records, and legacy excluded dates.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Data[dto.AssignmentResponse] "Assignment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments/{id} [get]
func (handler *Handler) GetAssignmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	assignment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assignment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Assignment retrieved successfully")

	response.WithJSON(w, http.StatusOK, assignment)
}

// UpdateAssignment updates an existing assignment by its ID.
// @Summary Update an assignment by ID
// @Description Update the details of an existing assignment.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Update Assignment Request"
// @Success 200 {object} response.Message "Assignment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAssignment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAssignmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update assignment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Assignment updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Assignment updated successfully")
}

// DeleteAssignment deletes an assignment and its schedule records.
// @Summary Delete an assignment by ID
// @Description Delete an assignment together with its day records and excluded dates. Status history is kept.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Message "Assignment deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAssignment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete assignment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Assignment deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Assignment deleted successfully")
}

// CycleStatus advances the booking status one step along the cycle.
// @Summary Cycle an assignment's booking status
// @Description Advance the booking status (tentative -> pending_confirmation -> confirmed -> tentative) and record the transition.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param request body dto.CycleStatusRequest false "Optional note for the history entry"
// @Success 200 {object} response.Data[dto.CycleStatusResponse] "Status cycled successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments/{id}/status [post]
// @Security BearerAuth
func (handler *Handler) CycleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CycleStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	// The note body is optional; an empty body is a bare cycle.
	req := dto.CycleStatusRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CycleStatus(ctx, id, req.Note)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cycle booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking status cycled successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetStatusHistory retrieves the booking status audit trail.
// @Summary Get an assignment's status history
// @Description Retrieve the append-only booking status history of an assignment, oldest first.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Data[dto.GetStatusHistoryResponse] "Status history"
// @Failure 500 {object} response.Error
// @Router /v1/assignments/{id}/history [get]
func (handler *Handler) GetStatusHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatusHistory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	history, err := handler.service.GetHistory(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get status history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Status history retrieved successfully")

	response.WithJSON(w, http.StatusOK, history)
}

// GetActiveDates returns the dates an assignment occupies.
// @Summary Get an assignment's active dates
// @Description Day-level records are authoritative when present; otherwise the project span minus excluded dates applies.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} response.Data[[]string] "Active dates"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments/{id}/dates [get]
func (handler *Handler) GetActiveDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveDates")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	dates, err := handler.service.ActiveDates(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Active dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, dates)
}

// AddDays adds a batch of day records to an assignment.
// @Summary Add day records to an assignment
// @Description Add a batch of scheduled days. The whole batch fails if any day is malformed or already scheduled.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param request body dto.AddDaysRequest true "Add Days Request"
// @Success 201 {object} response.Message "Days added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments/{id}/days [post]
// @Security BearerAuth
func (handler *Handler) AddDays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddDays")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddDaysRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddDays(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add assignment days")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Assignment days added successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Days added successfully")
}

// UpdateDay adjusts one day's start and end times.
// @Summary Update a day record
// @Description Update the start and end times of one scheduled day.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param dayId path string true "Day record ID"
// @Param request body dto.UpdateDayRequest true "Update Day Request"
// @Success 200 {object} response.Message "Day updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments/days/{dayId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDay")
	defer scope.End()

	dayID := chi.URLParam(r, constant.RequestParamDayID)

	req := dto.UpdateDayRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateDay(ctx, dayID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update assignment day")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Assignment day updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Day updated successfully")
}

// RemoveDays deletes a batch of day records.
// @Summary Remove day records
// @Description Delete the given day records. Ids that no longer exist are ignored.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param request body dto.RemoveDaysRequest true "Remove Days Request"
// @Success 200 {object} response.Message "Days removed successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/assignments/days [delete]
// @Security BearerAuth
func (handler *Handler) RemoveDays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveDays")
	defer scope.End()

	req := dto.RemoveDaysRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RemoveDays(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove assignment days")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Assignment days removed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Days removed successfully")
}
