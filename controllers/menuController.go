package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rms-api/config"
	"rms-api/models"
)

// GetMenu lists catalog items, optionally filtered by category.
func GetMenu(c *gin.Context) {
	query := config.DB.Order("category, name")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetPublicMenu serves the landing page: available items only, grouped by
// category.
func GetPublicMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.Where("available = ?", true).
		Order("category, name").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	grouped := make(map[string][]models.MenuItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	c.JSON(http.StatusOK, grouped)
}
