package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rms-api/config"
	"rms-api/models"
)

func GetInvoices(c *gin.Context) {
	var invoices []models.Invoice
	if err := config.DB.Order("created_at DESC").Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func GetInvoiceByID(c *gin.Context) {
	id := c.Param("id")
	var invoice models.Invoice
	if err := config.DB.First(&invoice, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}
