package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rms-api/services"
	"rms-api/utils"
	"rms-api/utils/apperrors"
)

func tableNumberParam(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table number"})
		return 0, false
	}
	return number, true
}

// GetTables returns every table with its active order, the shape the polling
// clients refresh against.
func GetTables(c *gin.Context) {
	tables, err := services.Lifecycle.ListTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tables)
}

func SelectTable(c *gin.Context) {
	number, ok := tableNumberParam(c)
	if !ok {
		return
	}

	table, err := services.Lifecycle.SelectTable(utils.GetUserRole(c), number)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}

// CreateTableOrder is the lazy get-or-create: the table's serving order, made
// on first use. 201 when this call created it, 200 when it already existed.
func CreateTableOrder(c *gin.Context) {
	number, ok := tableNumberParam(c)
	if !ok {
		return
	}

	order, created, err := services.Lifecycle.GetOrCreateOrder(utils.GetUserRole(c), number)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}
	if created {
		c.JSON(http.StatusCreated, order)
		return
	}
	c.JSON(http.StatusOK, order)
}

// SetTableStatus is the staff-only manual override (Reserved/Available).
func SetTableStatus(c *gin.Context) {
	number, ok := tableNumberParam(c)
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := services.Lifecycle.SetTableStatus(number, input.Status)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}
