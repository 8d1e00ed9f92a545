package controllers

import (
	"net/http"
	"strconv"
	"time"

	"washwear-backend/config"
	"washwear-backend/reports"
	"washwear-backend/utils"

	"github.com/gin-gonic/gin"
)

// CalendarDay summarizes one day of the month view.
type CalendarDay struct {
	Date   string           `json:"date"`
	Orders int              `json:"orders"`
	Color  reports.DayColor `json:"color"`
}

// GetCalendarMonth colors every day of the requested month by the state
// of the orders due on it. Year and month default to the current month;
// they are explicit parameters, not server-side state.
func GetCalendarMonth(c *gin.Context) {
	now := time.Now()
	year, err := intQuery(c, "year", now.Year())
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := intQuery(c, "month", int(now.Month()))
	if err != nil || month < 1 || month > 12 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
		return
	}

	orders := config.Records.Orders()

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(year, time.Month(month), d, 0, 0, 0, 0, now.Location())
		dueOrders := reports.OrdersDueOn(orders, day)
		days = append(days, CalendarDay{
			Date:   utils.FormatDate(day),
			Orders: len(dueOrders),
			Color:  reports.ColorForDay(dueOrders, day, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

// GetCalendarDay lists the orders due on one date, with client names.
func GetCalendarDay(c *gin.Context) {
	day, ok := utils.ParseDate(c.Query("date"))
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing date")
		return
	}

	clients := config.Records.Clients()
	names := make(map[int]string, len(clients))
	for _, cl := range clients {
		names[cl.ID] = cl.FullName
	}

	dueOrders := reports.OrdersDueOn(config.Records.Orders(), day)
	merged := make([]gin.H, 0, len(dueOrders))
	for _, o := range dueOrders {
		merged = append(merged, gin.H{
			"order":       o,
			"client_name": names[o.ClientID],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   utils.FormatDate(day),
		"color":  reports.ColorForDay(dueOrders, day, time.Now()),
		"orders": merged,
	})
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	value := c.Query(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
