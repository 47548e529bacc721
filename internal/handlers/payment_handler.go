package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/audit"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/httpresp"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

type PaymentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewPaymentHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{db: db, audit: auditDispatcher, log: log}
}

// --------- Requests ---------

// Reference ids arrive from the form as strings; "" means unset.
type AddPaymentRequest struct {
	CustomerID     uint    `json:"customer_id" binding:"required"`
	ServiceID      uint    `json:"service_id" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	SubscriptionID string  `json:"subscription_id"`
	AppointmentID  string  `json:"appointment_id"`
}

type UpdatePaymentRequest struct {
	Amount         *float64 `json:"amount"`
	Date           *string  `json:"date"`
	SubscriptionID *string  `json:"subscription_id"`
	AppointmentID  *string  `json:"appointment_id"`
}

// normalizeRef turns a form id string into a nullable foreign key.
func normalizeRef(s string) (*uint, bool) {
	if s == "" {
		return nil, true
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, false
	}
	id := uint(n)
	return &id, true
}

// --------- Handlers ---------

func (h *PaymentHandler) Add(c *gin.Context) {
	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, err.Error())
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, req.CustomerID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCustomerNotFound, "customer not found")
		return
	}

	var service models.Service
	if err := h.db.First(&service, req.ServiceID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "service not found")
		return
	}

	date, err := parseDateTime(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date could not be parsed")
		return
	}

	subscriptionID, ok := normalizeRef(req.SubscriptionID)
	if !ok {
		httperr.BadRequest(c, "invalid_subscription_id", "subscription_id must be numeric")
		return
	}
	appointmentID, ok := normalizeRef(req.AppointmentID)
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "appointment_id must be numeric")
		return
	}

	payment := models.Payment{
		CustomerID:     req.CustomerID,
		ServiceID:      req.ServiceID,
		SubscriptionID: subscriptionID,
		AppointmentID:  appointmentID,
		Amount:         req.Amount,
		Date:           date,
		Status:         "paid",
	}

	if err := h.db.Create(&payment).Error; err != nil {
		h.log.Error("failed to create payment", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to create payment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "payment_created",
		Entity:   "payment",
		EntityID: &payment.ID,
	})

	httpresp.Created(c, payment)
}

// Update lets staff re-point a payment at a different subscription or
// appointment; after normalization at least one reference must remain.
func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "payment id must be numeric")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, uint(id)).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "payment not found")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	subscriptionID := payment.SubscriptionID
	appointmentID := payment.AppointmentID

	if req.SubscriptionID != nil {
		ref, ok := normalizeRef(*req.SubscriptionID)
		if !ok {
			httperr.BadRequest(c, "invalid_subscription_id", "subscription_id must be numeric")
			return
		}
		subscriptionID = ref
	}
	if req.AppointmentID != nil {
		ref, ok := normalizeRef(*req.AppointmentID)
		if !ok {
			httperr.BadRequest(c, "invalid_appointment_id", "appointment_id must be numeric")
			return
		}
		appointmentID = ref
	}

	if subscriptionID == nil && appointmentID == nil {
		httperr.BadRequest(c, "payment_reference_required", "payment must reference a subscription or an appointment")
		return
	}

	payment.SubscriptionID = subscriptionID
	payment.AppointmentID = appointmentID

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := parseDateTime(*req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date could not be parsed")
			return
		}
		payment.Date = date
	}

	if err := h.db.Save(&payment).Error; err != nil {
		h.log.Error("failed to update payment", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to update payment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "payment_updated",
		Entity:   "payment",
		EntityID: &payment.ID,
	})

	httpresp.OK(c, payment)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "payment id must be numeric")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, uint(id)).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "payment not found")
		return
	}

	if err := h.db.Delete(&payment).Error; err != nil {
		h.log.Error("failed to delete payment", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to delete payment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "payment_deleted",
		Entity:   "payment",
		EntityID: &payment.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
