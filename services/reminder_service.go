// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"washwear-backend/models"
	"washwear-backend/reports"
	"washwear-backend/store"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type ReminderService struct {
	records *store.RecordStore
	client  *twilio.RestClient
	enabled bool
}

func NewReminderService(records *store.RecordStore) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		records: records,
		enabled: accountSid != "" && authToken != "",
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDeliveryReminders)

	c.Start()
	log.Println("Delivery reminder scheduler started")
}

// SendDeliveryReminders texts every client with an unfinished order due
// in the next 7 days. Without Twilio credentials the reminders are only
// logged.
func (s *ReminderService) SendDeliveryReminders() {
	log.Println("Starting daily delivery reminder processing...")

	upcoming := reports.UpcomingDeliveries(s.records.Orders(), time.Now(), 7)

	clients := s.records.Clients()
	byID := make(map[int]models.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	sent := 0
	for _, order := range upcoming {
		if order.Status == models.StatusCompleted {
			continue
		}
		client, ok := byID[order.ClientID]
		if !ok || client.Phone == "" {
			continue
		}

		message := fmt.Sprintf(
			"Hi %s, your %s order #%d is due on %s. Status: %s.",
			client.FullName, order.ServiceType, order.ID, order.DueDate, order.Status,
		)

		if !s.enabled {
			log.Printf("Twilio not configured, skipping SMS to %s: %s", client.Phone, message)
			continue
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(client.Phone)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		params.SetBody(message)

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", client.Phone, err)
			continue
		}
		if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", client.Phone, *resp.Sid)
		} else {
			log.Printf("Reminder sent to %s, but no SID returned", client.Phone)
		}
		sent++
	}

	log.Printf("Daily delivery reminder processing completed, %d sent", sent)
}
