package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carelink/portal-api/internal/api/metrics"
	"github.com/carelink/portal-api/internal/core/domain"
	"github.com/carelink/portal-api/internal/core/ports"
)

// AppointmentHandler handles the appointment endpoints behind the doctor and
// patient dashboards.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Book handles POST /v1/appointments (patient role).
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientName, _ := c.Get("name").(string)

	appt, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		PatientID:   accountID,
		PatientName: patientName,
		DoctorID:    req.DoctorID,
		DoctorName:  req.DoctorName,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Reason:      req.Reason,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsBookedTotal.Inc()
	return c.JSON(http.StatusCreated, toAppointmentResponse(appt))
}

// List handles GET /v1/appointments, scoped to the caller's own appointments.
//
// @Summary      List the caller's appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        status     query     string  false  "Filter by status"
// @Param        date_from  query     string  false  "Start of date range (RFC3339)"
// @Param        date_to    query     string  false  "End of date range (RFC3339)"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Success      200        {object}  listAppointmentsResponse
// @Failure      400        {object}  errorResponse
// @Router       /v1/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	accountID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dateFrom, err := parseTimeParam(c.QueryParam("date_from"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid date_from"})
	}
	dateTo, err := parseTimeParam(c.QueryParam("date_to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid date_to"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListAppointmentsInput{
		Role:      role,
		AccountID: accountID,
		Status:    c.QueryParam("status"),
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	items := make([]appointmentResponse, 0, len(result.Items))
	for _, a := range result.Items {
		items = append(items, toAppointmentResponse(a))
	}
	return c.JSON(http.StatusOK, listAppointmentsResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// UpdateStatus handles PATCH /v1/appointments/:id/status (doctor role).
//
// @Summary      Transition an appointment's status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "Appointment id"
// @Param        body  body      updateAppointmentStatusRequest  true  "New status"
// @Success      200   {object}  appointmentResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var req updateAppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	appt, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateAppointmentStatusInput{
		AppointmentID: c.Param("id"),
		DoctorID:      accountID,
		Status:        domain.AppointmentStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.AppointmentTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
