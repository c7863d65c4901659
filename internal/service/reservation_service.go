package service

import (
	"log"
	"strings"

	"samarlodge/internal/config"
	"samarlodge/internal/entities"
	apperrors "samarlodge/internal/errors"
	"samarlodge/internal/mailer"
)

// GuestOutcome describes what happened to the thank-you email.
type GuestOutcome string

const (
	GuestSent    GuestOutcome = "sent"
	GuestSkipped GuestOutcome = "skipped"
	GuestFailed  GuestOutcome = "failed"
)

// DispatchResult reports the two email outcomes separately. The HTTP layer
// still collapses them into one boolean; a guest failure fails the request.
type DispatchResult struct {
	HotelSent bool
	Guest     GuestOutcome
}

// ReservationService turns a reservation request into outbound emails: the
// detail email to the hotel first, then the thank-you to the guest when the
// submitted address looks sendable.
type ReservationService struct {
	Mail     config.MailConfig
	Provider mailer.Provider
	notify   *NotifyService
}

func NewReservationService(mail config.MailConfig, provider mailer.Provider, notify *NotifyService) *ReservationService {
	return &ReservationService{
		Mail:     mail,
		Provider: provider,
		notify:   notify,
	}
}

// Dispatch sends the hotel email and, if the guest address passes the shape
// check, the guest email. The sends run sequentially; a hotel failure aborts
// before the guest email is attempted.
func (s *ReservationService) Dispatch(req entities.ReservationRequest) (DispatchResult, error) {
	result := DispatchResult{Guest: GuestSkipped}

	if !s.Mail.Ready() {
		log.Println("Missing SMTP_USER, SMTP_PASS, or RECEIVER_EMAIL")
		return result, apperrors.ErrEmailNotConfigured
	}

	hotelHTML, err := RenderHotelEmail(req)
	if err != nil {
		return result, err
	}
	err = s.Provider.Send(mailer.Message{
		From:    s.Mail.User,
		To:      s.Mail.Receiver,
		Subject: HotelSubject,
		HTML:    hotelHTML,
		Text:    mailer.StripHTML(hotelHTML),
	})
	if err != nil {
		return result, err
	}
	result.HotelSent = true

	if ValidGuestEmail(req.Email) {
		guestHTML, err := RenderGuestEmail(req)
		if err != nil {
			result.Guest = GuestFailed
			return result, err
		}
		err = s.Provider.Send(mailer.Message{
			From:    s.Mail.User,
			To:      strings.TrimSpace(req.Email),
			Subject: GuestSubject,
			HTML:    guestHTML,
			Text:    mailer.StripHTML(guestHTML),
		})
		if err != nil {
			result.Guest = GuestFailed
			return result, err
		}
		result.Guest = GuestSent
	}

	if s.notify != nil {
		go s.notify.SendNewReservationSMS(req)
	}
	return result, nil
}
