package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hello World From FinBooks Backend API v1"})
}

// identityFromContext pulls the authenticated user and company from the
// request context, aborting with 401 when either is missing.
func identityFromContext(c *gin.Context) (userID string, companyID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	companyID, ok = middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return userID, companyID, true
}
