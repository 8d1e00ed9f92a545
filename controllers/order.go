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

// CreateOrderInput defines the expected JSON structure for adding an order
type CreateOrderInput struct {
	ClientID            int     `json:"client_id" binding:"required"`
	ServiceType         string  `json:"service_type" binding:"required"`
	WeightCount         float64 `json:"weight_count" binding:"min=0"`
	PickupDate          string  `json:"pickup_date"`
	DueDate             string  `json:"due_date"`
	Status              string  `json:"status"`
	SpecialInstructions string  `json:"special_instructions"`
	DeliveryFee         float64 `json:"delivery_fee" binding:"min=0"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder creates an order for an existing client. The total fee is
// computed from the service rate table at creation time.
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status := models.StatusScheduledPickup
	if input.Status != "" {
		canonical, ok := models.NormalizeOrderStatus(input.Status)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Unrecognized order status")
			return
		}
		status = canonical
	}

	pickup, err := normalizeDate(input.PickupDate, time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pickup date")
		return
	}
	due, err := normalizeDate(input.DueDate, time.Now().AddDate(0, 0, 2))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid due date")
		return
	}

	order, err := config.Records.AddOrder(models.Order{
		ClientID:            input.ClientID,
		ServiceType:         input.ServiceType,
		WeightCount:         input.WeightCount,
		PickupDate:          pickup,
		DueDate:             due,
		Status:              status,
		SpecialInstructions: input.SpecialInstructions,
		DeliveryFee:         input.DeliveryFee,
	})
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save order")
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders retrieves all orders with client names merged in
func GetOrders(c *gin.Context) {
	clients := config.Records.Clients()
	names := make(map[int]string, len(clients))
	for _, cl := range clients {
		names[cl.ID] = cl.FullName
	}

	orders := config.Records.Orders()
	merged := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		merged = append(merged, gin.H{
			"order":       o,
			"client_name": names[o.ClientID],
		})
	}
	c.JSON(http.StatusOK, merged)
}

// UpdateOrderStatus overwrites the status of one order; every other
// field, including the total fee, stays as it was.
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.Records.UpdateOrderStatus(orderID, input.Status); err != nil {
		if errors.Is(err, store.ErrInvalidStatus) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unrecognized order status")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

// DeleteOrder removes an order and its payments; lenient on unknown ids.
func DeleteOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	if err := config.Records.DeleteOrder(orderID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order and linked payments deleted"})
}

// normalizeDate parses a date input, applying the fallback when empty,
// and returns the canonical stored form.
func normalizeDate(value string, fallback time.Time) (string, error) {
	if value == "" {
		return utils.FormatDate(fallback), nil
	}
	parsed, ok := utils.ParseDate(value)
	if !ok {
		return "", errors.New("unparseable date")
	}
	return utils.FormatDate(parsed), nil
}
