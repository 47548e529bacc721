package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/audit"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/httpresp"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
	ucCustomer "github.com/zaferdrn0/Fzy-sub000/internal/usecase/customer"
	"github.com/zaferdrn0/Fzy-sub000/internal/validators"
)

type CustomerHandler struct {
	db          *gorm.DB
	detailUC    *ucCustomer.GetDetail
	dashboardUC *ucCustomer.GetDashboard
	audit       *audit.Dispatcher
	log         *zap.Logger
}

func NewCustomerHandler(
	db *gorm.DB,
	detailUC *ucCustomer.GetDetail,
	dashboardUC *ucCustomer.GetDashboard,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		db:          db,
		detailUC:    detailUC,
		dashboardUC: dashboardUC,
		audit:       auditDispatcher,
		log:         log,
	}
}

// --------- Requests ---------

type AddCustomerRequest struct {
	Name      string  `json:"name" binding:"required"`
	Surname   string  `json:"surname" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	BirthDate string  `json:"birth_date" binding:"required"`
	Weight    float64 `json:"weight" binding:"required"`
	Address   string  `json:"address"`
}

type UpdateCustomerRequest struct {
	Name     *string  `json:"name"`
	Surname  *string  `json:"surname"`
	Email    *string  `json:"email"`
	Phone    *string  `json:"phone"`
	Weight   *float64 `json:"weight"`
	Address  *string  `json:"address"`
	IsActive *bool    `json:"is_active"`
}

// --------- Handlers ---------

func (h *CustomerHandler) Add(c *gin.Context) {
	var req AddCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "email is not a valid address")
		return
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "birth_date must be YYYY-MM-DD")
		return
	}

	// e-posta tekilliği: stored lower-cased, so plain equality is
	// already case-insensitive
	var count int64
	if err := h.db.Model(&models.Customer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		h.log.Error("failed to check email uniqueness", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to create customer")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "a customer with this email already exists")
		return
	}

	customer := models.Customer{
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     email,
		Phone:     req.Phone,
		BirthDate: birthDate,
		Weight:    req.Weight,
		Address:   req.Address,
		IsActive:  true,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		h.log.Error("failed to create customer", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to create customer")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	httpresp.Created(c, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.Order("created_at DESC").Find(&customers).Error; err != nil {
		h.log.Error("failed to list customers", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to list customers")
		return
	}

	httpresp.OK(c, customers)
}

func (h *CustomerHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "customer id must be numeric")
		return
	}

	detail, err := h.detailUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeCustomerNotFound) {
			httperr.NotFound(c, httperr.CodeCustomerNotFound, "customer not found")
			return
		}
		h.log.Error("failed to load customer detail", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to load customer detail")
		return
	}

	httpresp.OK(c, detail)
}

func (h *CustomerHandler) Dashboard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "customer id must be numeric")
		return
	}

	dashboard, err := h.dashboardUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeCustomerNotFound) {
			httperr.NotFound(c, httperr.CodeCustomerNotFound, "customer not found")
			return
		}
		h.log.Error("failed to load customer dashboard", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to load customer dashboard")
		return
	}

	httpresp.OK(c, dashboard)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "customer id must be numeric")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, uint(id)).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCustomerNotFound, "customer not found")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Surname != nil {
		customer.Surname = *req.Surname
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validators.IsEmailValid(email) {
			httperr.BadRequest(c, "invalid_email", "email is not a valid address")
			return
		}
		var count int64
		if err := h.db.Model(&models.Customer{}).
			Where("email = ? AND id <> ?", email, customer.ID).
			Count(&count).Error; err != nil {
			h.log.Error("failed to check email uniqueness", zap.Error(err))
			httperr.Internal(c, "internal_error", "failed to update customer")
			return
		}
		if count > 0 {
			httperr.Conflict(c, "email_already_exists", "a customer with this email already exists")
			return
		}
		customer.Email = email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Weight != nil {
		customer.Weight = *req.Weight
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := h.db.Save(&customer).Error; err != nil {
		h.log.Error("failed to update customer", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to update customer")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	httpresp.OK(c, customer)
}

// Delete is a hard delete and does NOT cascade: appointments,
// subscriptions and payments referencing the customer stay behind.
// Known referential-integrity gap, kept for audit retention.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "customer id must be numeric")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeCustomerNotFound, "customer not found")
			return
		}
		h.log.Error("failed to load customer", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to delete customer")
		return
	}

	if err := h.db.Delete(&customer).Error; err != nil {
		h.log.Error("failed to delete customer", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to delete customer")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
