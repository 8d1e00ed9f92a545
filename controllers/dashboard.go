package controllers

import (
	"net/http"
	"time"

	"washwear-backend/config"
	"washwear-backend/reports"

	"github.com/gin-gonic/gin"
)

const topClientLimit = 5

// GetDashboardOverview returns the overview page data: headline totals,
// the top five clients by what they have paid, deliveries due within a
// week, and the order count per service type. Everything is recomputed
// from the workbook on each request.
func GetDashboardOverview(c *gin.Context) {
	clients := config.Records.Clients()
	orders := config.Records.Orders()
	payments := config.Records.Payments()
	costs := config.Records.Costs()

	response := gin.H{
		"summary":             reports.Overview(clients, orders, payments, costs),
		"topClients":          reports.TopClients(clients, orders, payments, topClientLimit),
		"upcomingDeliveries":  reports.UpcomingDeliveries(orders, time.Now(), 7),
		"serviceDistribution": reports.ServiceDistribution(orders),
	}

	c.JSON(http.StatusOK, response)
}
