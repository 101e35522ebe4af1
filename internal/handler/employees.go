package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack-app/internal/models"
	"logitrack-app/internal/resolver"
	"logitrack-app/pkg/datastore"
)

type EmployeeHandler struct {
	Store *datastore.Store
}

type EmployeeRequest struct {
	FirstName     string              `json:"first_name" binding:"required"`
	LastName      string              `json:"last_name" binding:"required"`
	Role          models.EmployeeRole `json:"role" binding:"required"`
	LicenseNumber string              `json:"license_number"`
}

func (r EmployeeRequest) toEmployee() models.Employee {
	return models.Employee{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Role:          r.Role,
		LicenseNumber: r.LicenseNumber,
	}.Normalize()
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Employees.List())
}

// ListDrivers returns the selection whitelist for trip assignment.
func (h *EmployeeHandler) ListDrivers(c *gin.Context) {
	drivers := resolver.SelectDrivers(h.Store.Employees.List())
	if drivers == nil {
		drivers = []models.Employee{}
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp := req.toEmployee()
	if err := emp.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp = h.Store.Employees.Add(emp)
	c.JSON(http.StatusCreated, emp)
}

// UpdateEmployee replaces the record. Switching an employee to Driver
// requires a license; switching away from Driver drops any stored license.
// The store itself enforces neither — the check lives here, at the boundary.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emp := req.toEmployee()
	emp.EmployeeID = id
	if err := emp.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Store.Employees.Update(emp) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if !h.Store.Employees.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
