package controllers

import (
	"net/http"
	"strconv"

	"washwear-backend/config"
	"washwear-backend/models"
	"washwear-backend/reports"
	"washwear-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateClientInput defines the expected JSON structure for adding a client
type CreateClientInput struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

// CreateClient adds a new client
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client, err := config.Records.AddClient(models.Client{
		FullName: input.FullName,
		Phone:    input.Phone,
		Email:    input.Email,
		Address:  input.Address,
		Notes:    input.Notes,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients
func GetClients(c *gin.Context) {
	c.JSON(http.StatusOK, config.Records.Clients())
}

// GetClient returns one client's profile: contact info, their orders and
// payments, and the spent/due balance.
func GetClient(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, found := config.Records.ClientByID(clientID)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	orders := config.Records.Orders()
	payments := config.Records.Payments()

	clientOrders := make([]models.Order, 0)
	orderIDs := make(map[int]bool)
	for _, o := range orders {
		if o.ClientID == clientID {
			clientOrders = append(clientOrders, o)
			orderIDs[o.ID] = true
		}
	}
	clientPayments := make([]models.Payment, 0)
	for _, p := range payments {
		if orderIDs[p.OrderID] {
			clientPayments = append(clientPayments, p)
		}
	}

	balance := reports.BalanceForClient(clientID, orders, payments)

	c.JSON(http.StatusOK, gin.H{
		"client":   client,
		"orders":   clientOrders,
		"payments": clientPayments,
		"balance":  balance,
	})
}

// DeleteClient removes a client along with their orders and the payments
// of those orders. Deletes are lenient: an unknown id removes nothing and
// still succeeds.
func DeleteClient(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	if err := config.Records.DeleteClient(clientID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client and associated orders/payments deleted"})
}
