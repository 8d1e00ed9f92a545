package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"washwear-backend/config"
	"washwear-backend/models"
	"washwear-backend/store"
	"washwear-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreatePaymentInput defines the expected JSON structure for recording a payment
type CreatePaymentInput struct {
	OrderID       int     `json:"order_id" binding:"required"`
	AmountPaid    float64 `json:"amount_paid" binding:"min=0"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	PaymentStatus string  `json:"payment_status" binding:"required"`
	Notes         string  `json:"notes"`
}

// CreatePayment records a payment against an existing order. The payment
// status is informational and is not reconciled against the amount.
func CreatePayment(c *gin.Context) {
	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.IsPaymentMethod(input.PaymentMethod) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unrecognized payment method")
		return
	}
	if !models.IsPaymentStatus(input.PaymentStatus) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unrecognized payment status")
		return
	}

	paymentDate, err := normalizeDate(input.PaymentDate, time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment date")
		return
	}

	payment, err := config.Records.AddPayment(models.Payment{
		OrderID:       input.OrderID,
		AmountPaid:    input.AmountPaid,
		PaymentDate:   paymentDate,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: input.PaymentStatus,
		Notes:         input.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save payment")
		}
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments retrieves all payments
func GetPayments(c *gin.Context) {
	c.JSON(http.StatusOK, config.Records.Payments())
}

// DeletePayment removes exactly one payment; lenient on unknown ids.
func DeletePayment(c *gin.Context) {
	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	if err := config.Records.DeletePayment(paymentID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
