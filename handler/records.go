package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"schoolapp-backend/onboarding"
)

// recordsHandler serves the per-collection lookups the mobile app's profile
// screens read, all keyed by the generated userid.
type recordsHandler struct {
	profiles  onboarding.ProfileStore
	addresses onboarding.AddressStore
	parents   onboarding.ParentStore
	files     onboarding.FileStore
}

func NewRecordsHandler(profiles onboarding.ProfileStore, addresses onboarding.AddressStore, parents onboarding.ParentStore, files onboarding.FileStore) *recordsHandler {
	return &recordsHandler{
		profiles:  profiles,
		addresses: addresses,
		parents:   parents,
		files:     files,
	}
}

func (h *recordsHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/profile/user/:userid", h.Profile)
	r.GET("/api/address/user/:userid", h.Addresses)
	r.GET("/api/parent/user/:userid", h.Parent)
	r.GET("/api/files/user/:userid", h.Files)
}

func (h *recordsHandler) Profile(c *gin.Context) {
	p, err := h.profiles.FindByUserID(c.Request.Context(), c.Param("userid"))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, p)
}

func (h *recordsHandler) Addresses(c *gin.Context) {
	addresses, err := h.addresses.FindByUserID(c.Request.Context(), c.Param("userid"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    addresses,
		"count":   len(addresses),
	})
}

func (h *recordsHandler) Parent(c *gin.Context) {
	p, err := h.parents.FindByUserID(c.Request.Context(), c.Param("userid"))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, p)
}

func (h *recordsHandler) Files(c *gin.Context) {
	files, err := h.files.FindByUserID(c.Request.Context(), c.Param("userid"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    files,
		"count":   len(files),
	})
}
