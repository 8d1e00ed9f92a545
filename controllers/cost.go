package controllers

import (
	"net/http"
	"time"

	"washwear-backend/config"
	"washwear-backend/models"
	"washwear-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateCostInput defines the expected JSON structure for adding an expense
type CreateCostInput struct {
	DateIncurred  string  `json:"date_incurred"`
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount" binding:"min=0"`
	FixedVariable string  `json:"fixed_variable" binding:"required"`
	Notes         string  `json:"notes"`
}

// CreateCost records a business expense
func CreateCost(c *gin.Context) {
	var input CreateCostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.IsExpenseCategory(input.Category) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unrecognized expense category")
		return
	}
	if !models.IsCostType(input.FixedVariable) {
		utils.RespondWithError(c, http.StatusBadRequest, "Cost type must be Fixed or Variable")
		return
	}

	dateIncurred, err := normalizeDate(input.DateIncurred, time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date incurred")
		return
	}

	cost, err := config.Records.AddCost(models.Cost{
		DateIncurred:  dateIncurred,
		Category:      input.Category,
		Description:   input.Description,
		Amount:        input.Amount,
		FixedVariable: input.FixedVariable,
		Notes:         input.Notes,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save cost")
		return
	}

	c.JSON(http.StatusCreated, cost)
}

// GetCosts retrieves all expenses
func GetCosts(c *gin.Context) {
	c.JSON(http.StatusOK, config.Records.Costs())
}
