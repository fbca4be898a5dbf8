package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rms-api/services"
	"rms-api/utils"
	"rms-api/utils/apperrors"
)

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

func GetOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := services.Lifecycle.GetOrder(id)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func AddOrderItem(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var input struct {
		ItemID   uint `json:"item_id" binding:"required"`
		Quantity int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.Lifecycle.AddItem(id, input.ItemID, input.Quantity)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes the order, cascades its invoice, and frees the table.
func DeleteOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := services.Lifecycle.DeleteOrder(id); err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// FinalizeOrder closes a serving order and writes the invoice.
func FinalizeOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var input struct {
		CustomerName  string  `json:"customer_name" binding:"required"`
		CustomerPhone string  `json:"customer_phone" binding:"required"`
		Tax           float64 `json:"tax"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := services.Lifecycle.Finalize(utils.GetUserID(c), id,
		input.CustomerName, input.CustomerPhone, input.Tax)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, invoice)
}
