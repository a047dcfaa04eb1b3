package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"schoolapp-backend/entity"
	"schoolapp-backend/errs"
	"schoolapp-backend/jwt"
	"schoolapp-backend/log"
	"schoolapp-backend/onboarding"
)

// UserStore is the user lookup surface the auth endpoints need on top of
// what the orchestrator already uses.
type UserStore interface {
	onboarding.UserStore
	FindByLogin(ctx context.Context, username, usertype string) (*entity.User, error)
}

type authHandler struct {
	svc       *onboarding.Service
	users     UserStore
	key       []byte
	notifiers []Notifier
}

func NewAuthHandler(svc *onboarding.Service, users UserStore, key []byte, notifiers ...Notifier) *authHandler {
	return &authHandler{
		svc:       svc,
		users:     users,
		key:       key,
		notifiers: notifiers,
	}
}

func (h *authHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/user/register", h.Register)
	r.POST("/api/user/login", h.Login)
	r.POST("/api/user/refresh", h.Refresh)
}

func (h *authHandler) Register(c *gin.Context) {
	req := &onboarding.Request{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "malformed payload"})
		return
	}

	userid, err := h.svc.Onboard(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	u, err := h.users.FindByUserID(c.Request.Context(), userid)
	if err != nil {
		log.Logger.Error("created user missing on read-back", zap.String("userid", userid), zap.Error(err))
	} else {
		for _, n := range h.notifiers {
			n.Onboarded(u)
		}
	}

	ok(c, http.StatusCreated, gin.H{"userid": userid})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

func (h *authHandler) Login(c *gin.Context) {
	req := &loginRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "malformed payload"})
		return
	}

	if req.Username == "" {
		fail(c, errs.ErrUsernameRequired)
		return
	}

	if req.Password == "" {
		fail(c, errs.ErrPasswordRequired)
		return
	}

	usertype := req.UserType
	if usertype == "" {
		usertype = entity.TypeStudent
	}

	u, err := h.users.FindByLogin(c.Request.Context(), req.Username, usertype)
	if err != nil {
		if err == errs.ErrNotFound {
			fail(c, errs.ErrInvalidEmailOrPassword)
			return
		}

		fail(c, err)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			log.Logger.Debug("invalid password", zap.String("username", req.Username))
			fail(c, errs.ErrInvalidEmailOrPassword)
			return
		}

		fail(c, errs.ErrCryptographic)
		return
	}

	refresh, err := jwt.NewRefreshToken(u, h.key)
	if err != nil {
		fail(c, errs.ErrJWT)
		return
	}

	access, err := jwt.NewAccessToken(u, h.key)
	if err != nil {
		fail(c, errs.ErrJWT)
		return
	}

	ok(c, http.StatusOK, gin.H{
		"userid":       u.UserID,
		"username":     u.Username,
		"usertype":     u.UserType,
		"accessToken":  access,
		"refreshToken": refresh,
	})
}

type refreshRequest struct {
	Token string `json:"token"`
}

func (h *authHandler) Refresh(c *gin.Context) {
	req := &refreshRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "malformed payload"})
		return
	}

	claims, err := jwt.ValidateRefreshToken(req.Token, h.key)
	if err != nil {
		if err == jwt.ErrExpired {
			fail(c, errs.ErrTokenExpired)
			return
		}

		fail(c, errs.ErrJWT)
		return
	}

	u, err := h.users.FindByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		if err == errs.ErrNotFound {
			fail(c, errs.ErrJWT)
			return
		}

		fail(c, err)
		return
	}

	access, err := jwt.NewAccessToken(u, h.key)
	if err != nil {
		fail(c, errs.ErrJWT)
		return
	}

	ok(c, http.StatusOK, gin.H{"accessToken": access})
}
