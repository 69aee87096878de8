package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wallet-manager.backend/internal/interfaces/http/response"
)

// VersionHandler serves the configured application version
type VersionHandler struct {
	version string
}

func NewVersionHandler(version string) *VersionHandler {
	return &VersionHandler{version: version}
}

// GetVersion returns the running version
// GET /version
func (h *VersionHandler) GetVersion(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"version": h.version})
}
