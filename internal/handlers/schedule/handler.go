package schedule

import (
	"net/http"
	"time"

	"roster/infras/otel"
	"roster/internal/domains/schedule/service"
	"roster/shared"
	"roster/shared/constant"
	"roster/shared/failure"
	"roster/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/month", handler.GetMonthView)
		routerGroup.Get("/week", handler.GetWeekView)
		routerGroup.Get("/users/{id}", handler.GetUserSchedule)
		routerGroup.Get("/projects/{id}/gantt", handler.GetProjectGantt)
	})
}

// GetMonthView renders the month calendar with booked slots.
// @Summary Get the month schedule view
// @Description Render the month grid with every booked slot mapped onto its date. The grid spans whole weeks.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} response.Data[dto.MonthViewResponse] "Month view"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/month [get]
func (handler *Handler) GetMonthView(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthView")
	defer scope.End()

	year, err := shared.ConvertStringToInt(r.URL.Query().Get("year"))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("year must be a number"))

		return
	}

	month, err := shared.ConvertStringToInt(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.WithError(w, failure.BadRequestFromString("month must be a number between 1 and 12"))

		return
	}

	view, err := handler.service.MonthView(ctx, year, time.Month(month))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get month view")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Month view retrieved successfully")

	response.WithJSON(w, http.StatusOK, view)
}

// GetWeekView renders the week containing the given date.
// @Summary Get the week schedule view
// @Description Render the week containing the given date with booked slots mapped onto each day.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date query string true "Any date inside the week (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.WeekViewResponse] "Week view"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/week [get]
func (handler *Handler) GetWeekView(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeekView")
	defer scope.End()

	date := r.URL.Query().Get("date")
	if date == "" {
		response.WithError(w, failure.BadRequestFromString("date is required"))

		return
	}

	view, err := handler.service.WeekView(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get week view")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Week view retrieved successfully")

	response.WithJSON(w, http.StatusOK, view)
}

// GetUserSchedule returns a user's occupied dates inside a window.
// @Summary Get a user's schedule
// @Description Retrieve the user's occupied dates in the window. Dates booked by more than one assignment are flagged as conflicts.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param start_date query string true "Window start (YYYY-MM-DD)"
// @Param end_date query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.UserScheduleResponse] "User schedule"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/users/{id} [get]
func (handler *Handler) GetUserSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserSchedule")
	defer scope.End()

	userID := chi.URLParam(r, constant.RequestParamID)
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	if startDate == "" || endDate == "" {
		response.WithError(w, failure.BadRequestFromString("start_date and end_date are required"))

		return
	}

	schedule, err := handler.service.UserSchedule(ctx, userID, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User schedule retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedule)
}

// GetProjectGantt renders a project's assignments as timeline rows.
// @Summary Get a project's gantt view
// @Description Render one timeline row per assignment, with active dates folded into consecutive blocks.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.Data[dto.GanttResponse] "Project gantt"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/projects/{id}/gantt [get]
func (handler *Handler) GetProjectGantt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjectGantt")
	defer scope.End()

	projectID := chi.URLParam(r, constant.RequestParamID)

	gantt, err := handler.service.ProjectGantt(ctx, projectID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get project gantt")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project gantt retrieved successfully")

	response.WithJSON(w, http.StatusOK, gantt)
}
