package service

import (
	"fmt"
	"log"
	"strings"

	"samarlodge/internal/config"
	"samarlodge/internal/entities"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends a short SMS to the hotel staff phone when a new
// reservation request arrives. Failures are logged and never affect the
// request outcome.
type NotifyService struct {
	cfg config.SMSConfig
}

func NewNotifyService(cfg config.SMSConfig) *NotifyService {
	return &NotifyService{cfg: cfg}
}

func (n *NotifyService) SendNewReservationSMS(req entities.ReservationRequest) {
	message := fmt.Sprintf("Samar Annapurna Hotel: new reservation request from %s (%s), %s to %s. Details in the reservation inbox.",
		orDash(req.Name), orDash(req.Phone), orDash(req.CheckIn), orDash(req.CheckOut))

	if err := n.sendSMS(n.cfg.NotifyTo, message); err != nil {
		log.Printf("ALERT: failed to send reservation SMS to %s: %v", n.cfg.NotifyTo, err)
	}
}

func (n *NotifyService) sendSMS(toNumber, messageBody string) error {
	if !n.cfg.Enabled() {
		return fmt.Errorf("Twilio credentials not fully configured")
	}

	if !strings.HasPrefix(toNumber, "+") {
		log.Printf("WARNING: destination number '%s' is not in E.164 format (should start with '+'). The SMS may fail.", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: n.cfg.AccountSID,
		Password: n.cfg.AuthToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(n.cfg.FromNumber)
	params.SetBody(messageBody)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
