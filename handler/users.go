package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"schoolapp-backend/onboarding"
)

type userHandler struct {
	svc   *onboarding.Service
	users UserStore
}

func NewUserHandler(svc *onboarding.Service, users UserStore) *userHandler {
	return &userHandler{
		svc:   svc,
		users: users,
	}
}

func (h *userHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/user", h.List)
	r.GET("/api/user/:userid", h.Get)
	r.DELETE("/api/user/:userid", h.Delete)
}

func (h *userHandler) List(c *gin.Context) {
	users, err := h.users.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"count":   len(users),
	})
}

func (h *userHandler) Get(c *gin.Context) {
	u, err := h.users.FindByUserID(c.Request.Context(), c.Param("userid"))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, u)
}

// Delete removes the user and every dependent record, walking the same
// reverse order the onboarding rollback uses so dependents never outlive
// their user.
func (h *userHandler) Delete(c *gin.Context) {
	userid := c.Param("userid")

	if _, err := h.users.FindByUserID(c.Request.Context(), userid); err != nil {
		fail(c, err)
		return
	}

	h.svc.Rollback(c.Request.Context(), onboarding.FullLedger(userid))

	ok(c, http.StatusOK, gin.H{"userid": userid})
}
