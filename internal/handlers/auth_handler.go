package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/config"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/middleware"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
	"github.com/zaferdrn0/Fzy-sub000/internal/session"
	"github.com/zaferdrn0/Fzy-sub000/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	sessions *session.Store
	log      *zap.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, sessions *session.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, sessions: sessions, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "email is not a valid address")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		h.log.Error("failed to check email uniqueness", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to register user")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "a user with this email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("failed to hash password", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to register user")
		return
	}

	// ilk kullanıcı admin olur
	var userCount int64
	if err := h.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		h.log.Error("failed to count users", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to register user")
		return
	}
	roleName := models.RoleUser
	if userCount == 0 {
		roleName = models.RoleAdmin
	}

	role, err := h.getOrCreateRole(roleName)
	if err != nil {
		h.log.Error("failed to resolve role", zap.String("role", roleName), zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to register user")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		RoleID:       role.ID,
		Role:         *role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		h.log.Error("failed to create user", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       role.Name,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.BadRequest(c, "user_not_found", "no user with this email")
			return
		}
		h.log.Error("failed to load user", zap.Error(err))
		httperr.Internal(c, "internal_error", "login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.BadRequest(c, "invalid_password", "password does not match")
		return
	}

	sid, err := h.sessions.Create(c.Request.Context(), session.Data{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role.Name,
	})
	if err != nil {
		h.log.Error("failed to create session", zap.Error(err))
		httperr.Internal(c, "internal_error", "login failed")
		return
	}

	cookie, err := session.EncodeCookie(h.config.SessionSecret, sid, h.sessions.TTL())
	if err != nil {
		h.log.Error("failed to sign session cookie", zap.Error(err))
		httperr.Internal(c, "internal_error", "login failed")
		return
	}

	c.SetCookie(session.CookieName, cookie, int(h.sessions.TTL().Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       user.Role.Name,
		},
	})
}

// Logout is best-effort on the cookie: a resolvable session is
// deleted from the store, anything else still gets the cookie
// cleared. Only a store failure is an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	if value, err := c.Cookie(session.CookieName); err == nil && value != "" {
		if sid, err := session.DecodeCookie(h.config.SessionSecret, value); err == nil {
			if err := h.sessions.Delete(c.Request.Context(), sid); err != nil {
				h.log.Error("failed to delete session", zap.Error(err))
				httperr.Internal(c, "internal_error", "logout failed")
				return
			}
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}

// CheckAuth never fails: it reports whether the cookie resolves to a
// live session, with the user attached when it does.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	value, err := c.Cookie(session.CookieName)
	if err != nil || value == "" {
		c.JSON(http.StatusOK, gin.H{"is_logged_in": false})
		return
	}

	sid, err := session.DecodeCookie(h.config.SessionSecret, value)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"is_logged_in": false})
		return
	}

	data, err := h.sessions.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"is_logged_in": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_logged_in": true,
		"user": gin.H{
			"id":    data.UserID,
			"email": data.Email,
			"role":  data.Role,
		},
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Role").First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"role":       user.Role.Name,
	})
}

func (h *AuthHandler) getOrCreateRole(name string) (*models.Role, error) {
	var role models.Role
	err := h.db.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role = models.Role{Name: name}
	if err := h.db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
