package handlers

import (
	"net/http"

	"fixly/models"
	"fixly/services/pricing"
	"fixly/utils"

	"github.com/gin-gonic/gin"
)

// PriceBreakdownByCategoryHandler handles GET /api/pricing/:category.
// Unknown categories fall back to the default table; an explicit bad value
// is still rejected so typos surface instead of silently pricing as plumbing.
func PriceBreakdownByCategoryHandler(c *gin.Context) {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		utils.JSONError(c, http.StatusNotFound, "Unknown pricing category", category)
		return
	}

	breakdown := pricing.ForCategory(category)
	if currency := c.Query("currency"); currency != "" && currency != utils.DefaultCurrency {
		breakdown = pricing.Convert(breakdown, currency)
	}
	c.JSON(http.StatusOK, breakdown)
}

// ListCurrenciesHandler handles GET /api/currencies.
func ListCurrenciesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"base":       utils.DefaultCurrency,
		"currencies": utils.SupportedCurrencies(),
	})
}
