package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack-app/config"
)

type PublicHandler struct{}

func (h *PublicHandler) GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, config.AppConfig.Site)
}

func (h *PublicHandler) GetPublicConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"company_name":    config.AppConfig.Defaults.CompanyName,
		"company_address": config.AppConfig.Defaults.CompanyAddress,
		"company_phone":   config.AppConfig.Defaults.CompanyPhone,
	})
}
