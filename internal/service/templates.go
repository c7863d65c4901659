package service

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"samarlodge/internal/entities"
)

const (
	hotelName = "Samar Annapurna Hotel"

	// HotelSubject is the subject of the reservation-detail email to the hotel.
	HotelSubject = "New Reservation Request – Samar Annapurna Hotel"
	// GuestSubject is the subject of the thank-you email to the guest.
	GuestSubject = "We received your reservation – Samar Annapurna Hotel"

	// placeholder stands in for any field left absent or blank.
	placeholder = "–"
)

var (
	guestEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
)

// ValidGuestEmail reports whether addr (trimmed) has a sendable address shape.
// The thank-you email is silently skipped when this fails.
func ValidGuestEmail(addr string) bool {
	return guestEmailPattern.MatchString(strings.TrimSpace(addr))
}

// FirstName returns the first whitespace-delimited token of name, or "Guest"
// when the name is blank.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "Guest"
	}
	return fields[0]
}

type hotelRow struct {
	Label   string
	Value   string
	Href    template.URL // optional mailto:/tel: link
	Divider bool
}

type hotelEmailData struct {
	Hotel string
	Rows  []hotelRow
}

type guestEmailData struct {
	Hotel     string
	FirstName string
}

var hotelTmpl = template.Must(template.New("hotel").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin:0;font-family:'Segoe UI',system-ui,sans-serif;background:#f5efe6;color:#2c3e50;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#f5efe6;padding:24px 16px;">
    <tr><td align="center">
      <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="max-width:560px;background:#fff;border-radius:12px;overflow:hidden;">
        <tr><td style="background:#2c3e50;color:#f5efe6;padding:20px 24px;">
          <h1 style="margin:0;font-size:20px;font-weight:600;">New Reservation Request</h1>
          <p style="margin:6px 0 0;font-size:14px;opacity:0.9;">{{.Hotel}}</p>
        </td></tr>
        <tr><td style="padding:24px;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="font-size:15px;line-height:1.6;">
{{- range .Rows}}
            <tr><td style="padding:10px 0;{{if .Divider}}border-bottom:1px solid #e8dcc4;{{end}}"><strong style="color:#2c3e50;">{{.Label}}</strong></td><td style="padding:10px 0;{{if .Divider}}border-bottom:1px solid #e8dcc4;{{end}}text-align:right;">{{if .Href}}<a href="{{.Href}}" style="color:#c65d3b;">{{.Value}}</a>{{else}}{{.Value}}{{end}}</td></tr>
{{- end}}
          </table>
        </td></tr>
        <tr><td style="background:#e8dcc4;padding:12px 24px;font-size:13px;color:#2c3e50;">
          Reply to the guest at the email above, or call/WhatsApp to confirm.
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`))

var guestTmpl = template.Must(template.New("guest").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin:0;font-family:'Segoe UI',system-ui,sans-serif;background:#f5efe6;color:#2c3e50;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background:#f5efe6;padding:24px 16px;">
    <tr><td align="center">
      <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="max-width:560px;background:#fff;border-radius:12px;overflow:hidden;">
        <tr><td style="background:#2c3e50;color:#f5efe6;padding:24px;">
          <h1 style="margin:0;font-size:22px;font-weight:600;">Thank you, {{.FirstName}}</h1>
          <p style="margin:8px 0 0;font-size:15px;opacity:0.9;">We have received your reservation request.</p>
        </td></tr>
        <tr><td style="padding:28px 24px;">
          <p style="margin:0 0 16px;font-size:16px;line-height:1.6;">Hello {{.FirstName}},</p>
          <p style="margin:0 0 16px;font-size:16px;line-height:1.6;">
            Thank you for choosing <strong>{{.Hotel}}</strong>. We have received your reservation details
            and will get back to you shortly to confirm availability and next steps.
          </p>
          <div style="background:#f5efe6;border-radius:8px;padding:16px;margin:20px 0;">
            <p style="margin:0 0 8px;font-size:13px;opacity:0.85;">What happens next?</p>
            <ul style="margin:0;padding-left:20px;font-size:15px;line-height:1.7;">
              <li>We will review your request and confirm by email or phone/WhatsApp.</li>
              <li>Feel free to reach us at <a href="mailto:samarannapurnahotel@gmail.com" style="color:#c65d3b;">samarannapurnahotel@gmail.com</a> or <a href="tel:+9779841345621" style="color:#c65d3b;">+977-9841345621</a> with any questions.</li>
            </ul>
          </div>
          <p style="margin:0;font-size:16px;line-height:1.6;">We look forward to welcoming you to Mustang.</p>
        </td></tr>
        <tr><td style="background:#2c3e50;color:#f5efe6;padding:16px 24px;font-size:14px;">
          <strong>{{.Hotel}}</strong> · Family-run lodge in Upper Mustang, Nepal<br>
          <a href="mailto:samarannapurnahotel@gmail.com" style="color:#e8dcc4;">samarannapurnahotel@gmail.com</a> · +977-9841345621
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`))

// RenderHotelEmail builds the reservation-detail document for the hotel inbox.
// Blank or absent fields render as an en dash; the email and phone values get
// mailto:/tel: links while still displaying the submitted text.
func RenderHotelEmail(req entities.ReservationRequest) (string, error) {
	rows := []hotelRow{
		{Label: "Guest name", Value: orDash(req.Name), Divider: true},
		{Label: "Email", Value: orDash(req.Email), Href: mailtoHref(req.Email), Divider: true},
		{Label: "Phone / WhatsApp", Value: orDash(req.Phone), Href: telHref(req.Phone), Divider: true},
		{Label: "Check-in", Value: orDash(req.CheckIn), Divider: true},
		{Label: "Check-out", Value: orDash(req.CheckOut), Divider: true},
		{Label: "Adults", Value: intOrDash(req.Adults), Divider: true},
		{Label: "Children", Value: intOrDash(req.Children), Divider: true},
		{Label: "Room type", Value: orDash(req.RoomType), Divider: true},
		{Label: "Rooms", Value: intOrDash(req.Rooms), Divider: true},
		{Label: "Special requests", Value: orDash(req.SpecialRequests)},
	}

	var buf bytes.Buffer
	if err := hotelTmpl.Execute(&buf, hotelEmailData{Hotel: hotelName, Rows: rows}); err != nil {
		return "", fmt.Errorf("failed to render hotel email: %w", err)
	}
	return buf.String(), nil
}

// RenderGuestEmail builds the thank-you document for the submitting guest.
func RenderGuestEmail(req entities.ReservationRequest) (string, error) {
	var buf bytes.Buffer
	data := guestEmailData{Hotel: hotelName, FirstName: FirstName(req.Name)}
	if err := guestTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render guest email: %w", err)
	}
	return buf.String(), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func intOrDash(n *int) string {
	if n == nil {
		return placeholder
	}
	return strconv.Itoa(*n)
}

func mailtoHref(email string) template.URL {
	// QueryEscape encodes a space as "+", which a mailto: URI reads as a
	// literal plus; percent-encode it instead.
	escaped := strings.ReplaceAll(url.QueryEscape(email), "+", "%20")
	return template.URL("mailto:" + escaped)
}

func telHref(phone string) template.URL {
	return template.URL("tel:" + nonDigitPattern.ReplaceAllString(phone, ""))
}
