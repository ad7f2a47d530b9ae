package email

import (
	"fmt"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	RecipientName  string
	RecipientEmail string
	DoctorName     string
	PatientName    string
	Date           string // e.g. "2026-03-14"
	SlotLabel      string // e.g. "09:45"
	Token          int
	OldStatus      string
	NewStatus      string
	AppName        string
}

// BuildBookingConfirmedEmail creates the message sent to a patient after a
// booking succeeds.
func BuildBookingConfirmedEmail(data AppointmentEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Hospital"
	}

	name := data.RecipientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Your appointment with Dr. %s is booked", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment has been booked.

Doctor:  Dr. %s
Date:    %s
Time:    %s
Token:   #%d

Please arrive a few minutes before your slot. Your token number is your
place in the day's queue.

Thanks,
The %s Team`,
		name, data.DoctorName, data.Date, data.SlotLabel, data.Token, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment has been booked.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 6px 12px; color: #6b7280;">Doctor</td><td style="padding: 6px 12px;"><strong>Dr. %s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Date</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Time</td><td style="padding: 6px 12px;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px; color: #6b7280;">Token</td><td style="padding: 6px 12px;"><strong>#%d</strong></td></tr>
    </table>
    <p>Please arrive a few minutes before your slot. Your token number is your place in the day's queue.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.DoctorName, data.Date, data.SlotLabel, data.Token, appName)

	return Message{
		To:       []string{data.RecipientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildStatusChangedEmail creates the message sent to a patient when the
// doctor moves their appointment to a new status.
func BuildStatusChangedEmail(data AppointmentEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Hospital"
	}

	name := data.RecipientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Your appointment on %s is now %s", data.Date, data.NewStatus)

	statusLine := statusExplanation(data.NewStatus)

	textBody := fmt.Sprintf(`Hi %s,

The status of your appointment with Dr. %s on %s at %s (token #%d)
has changed from %s to %s.

%s

Thanks,
The %s Team`,
		name, data.DoctorName, data.Date, data.SlotLabel, data.Token,
		data.OldStatus, data.NewStatus, statusLine, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>The status of your appointment with <strong>Dr. %s</strong> on <strong>%s</strong> at <strong>%s</strong> (token #%d) has changed:</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="color: #6b7280;">%s</span>
        <span style="margin: 0 10px;">&rarr;</span>
        <span style="font-weight: bold;">%s</span>
    </p>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.DoctorName, data.Date, data.SlotLabel, data.Token,
		data.OldStatus, data.NewStatus, statusLine, appName)

	return Message{
		To:       []string{data.RecipientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

func statusExplanation(status string) string {
	switch status {
	case "confirmed":
		return "The doctor has confirmed your visit. Please arrive a few minutes before your slot."
	case "completed":
		return "Your visit has been marked completed. We hope everything went well."
	case "cancelled":
		return "Your appointment has been cancelled. You can book a new slot anytime."
	default:
		return ""
	}
}
