package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/audit"
	domain "github.com/zaferdrn0/Fzy-sub000/internal/domain/appointment"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/httpresp"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

type AppointmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewAppointmentHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{db: db, audit: auditDispatcher, log: log}
}

// --------- Requests ---------

type AddAppointmentRequest struct {
	CustomerID     uint    `json:"customer_id" binding:"required"`
	ServiceID      uint    `json:"service_id" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	SubscriptionID *uint   `json:"subscription_id"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	Fee            float64 `json:"fee"`
	IsPaid         bool    `json:"is_paid"`
	DoctorReport   string  `json:"doctor_report"`
	MassageDetails string  `json:"massage_details"`
}

type UpdateAppointmentRequest struct {
	Date           *string  `json:"date"`
	SubscriptionID *uint    `json:"subscription_id"`
	Status         *string  `json:"status"`
	Notes          *string  `json:"notes"`
	Fee            *float64 `json:"fee"`
	IsPaid         *bool    `json:"is_paid"`
	DoctorReport   *string  `json:"doctor_report"`
	MassageDetails *string  `json:"massage_details"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Add(c *gin.Context) {
	var req AddAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, err.Error())
		return
	}

	date, err := parseDateTime(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date could not be parsed")
		return
	}

	status := domain.InitialStatus()
	if req.Status != "" {
		if !domain.IsValid(domain.Status(req.Status)) {
			httperr.BadRequest(c, "invalid_status", "unknown appointment status")
			return
		}
		status = domain.Status(req.Status)
	}

	ap := models.Appointment{
		CustomerID:     req.CustomerID,
		ServiceID:      req.ServiceID,
		SubscriptionID: req.SubscriptionID,
		Date:           date,
		Status:         string(status),
		Notes:          req.Notes,
		Fee:            req.Fee,
		IsPaid:         req.IsPaid,
		DoctorReport:   req.DoctorReport,
		MassageDetails: req.MassageDetails,
	}

	if err := h.db.Create(&ap).Error; err != nil {
		h.log.Error("failed to create appointment", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to create appointment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.Created(c, ap)
}

// Previous returns the customer's latest appointment for a service,
// by creation time. The UI pre-fills the booking form with it.
func (h *AppointmentHandler) Previous(c *gin.Context) {
	customerID := c.Query("customerId")
	serviceID := c.Query("serviceId")
	if customerID == "" || serviceID == "" {
		httperr.BadRequest(c, httperr.CodeMissingField, "customerId and serviceId are required")
		return
	}

	var ap models.Appointment
	err := h.db.
		Where("customer_id = ? AND service_id = ?", customerID, serviceID).
		Order("created_at DESC").
		First(&ap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "no previous appointment")
			return
		}
		h.log.Error("failed to load previous appointment", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to load previous appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	q := h.db.Preload("Service")

	if customerID := c.Query("customerId"); customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}

	var apps []models.Appointment
	if err := q.Order("date DESC").Find(&apps).Error; err != nil {
		h.log.Error("failed to list appointments", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to list appointments")
		return
	}

	httpresp.OK(c, apps)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id must be numeric")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, uint(id)).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "appointment not found")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Date != nil {
		date, err := parseDateTime(*req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date could not be parsed")
			return
		}
		ap.Date = date
	}
	if req.Status != nil {
		// any known status is accepted, including moving an attended
		// or missed appointment back to scheduled
		if !domain.IsValid(domain.Status(*req.Status)) {
			httperr.BadRequest(c, "invalid_status", "unknown appointment status")
			return
		}
		ap.Status = *req.Status
	}
	if req.SubscriptionID != nil {
		ap.SubscriptionID = req.SubscriptionID
	}
	if req.Notes != nil {
		ap.Notes = *req.Notes
	}
	if req.Fee != nil {
		ap.Fee = *req.Fee
	}
	if req.IsPaid != nil {
		ap.IsPaid = *req.IsPaid
	}
	if req.DoctorReport != nil {
		ap.DoctorReport = *req.DoctorReport
	}
	if req.MassageDetails != nil {
		ap.MassageDetails = *req.MassageDetails
	}

	if err := h.db.Save(&ap).Error; err != nil {
		h.log.Error("failed to update appointment", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to update appointment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "appointment id must be numeric")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, uint(id)).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "appointment not found")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		h.log.Error("failed to delete appointment", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to delete appointment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
