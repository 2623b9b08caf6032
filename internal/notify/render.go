package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

// Confirmation is the booking snapshot a confirmation is rendered from.
type Confirmation struct {
	BookID        string
	Name          string
	Email         string
	Phone         string
	Pickup        string
	Drop          string
	TripType      string
	Date          string
	Time          string
	Amount        float64
	CabName       string
	VehicleNo     string
	DriverName    string
	DriverContact string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Booking Confirmation</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f7f7f7;">
<div style="max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px;">
<div style="background-color: #007BFF; color: #ffffff; padding: 20px; text-align: center;">
<h1 style="margin: 0;">Booking Confirmation</h1>
</div>
<div style="padding: 20px;">
<h3>Hello {{.Name}},</h3>
<p>Your booking has been confirmed. Below are the details of your booking:</p>
<ul style="list-style-type: none; padding: 0;">
<li><strong>Booking ID:</strong> {{.BookID}}</li>
<li><strong>Pickup Location:</strong> {{.Pickup}}</li>
<li><strong>Drop Location:</strong> {{.Drop}}</li>
<li><strong>Trip Type:</strong> {{.TripType}}</li>
<li><strong>Date:</strong> {{.Date}}</li>
<li><strong>Time:</strong> {{.Time}}</li>
<li><strong>Amount Paid:</strong> ₹{{printf "%.2f" .Amount}}</li>
<li><strong>Cab Name:</strong> {{.CabName}}</li>
<li><strong>Vehicle No:</strong> {{.VehicleNo}}</li>
<li><strong>Driver Name:</strong> {{.DriverName}}</li>
<li><strong>Driver Contact:</strong> {{.DriverContact}}</li>
</ul>
<p>Thank you for choosing us! We wish you a safe and pleasant journey.</p>
</div>
</div>
</body>
</html>
`))

// RenderConfirmation is the single renderer shared by every completion
// trigger. It is pure: same snapshot, same output.
func RenderConfirmation(c Confirmation) (subject, body string) {
	subject = "Booking Confirmation - " + c.BookID

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, c); err != nil {
		// the template is fixed and the data is plain strings
		panic(fmt.Sprintf("render confirmation: %v", err))
	}
	return subject, buf.String()
}

// ConfirmationText is the short form used by SMS and chat sinks.
func ConfirmationText(c Confirmation) string {
	return fmt.Sprintf("Booking %s confirmed: %s to %s on %s %s. Cab %s (%s), driver %s %s. Fare ₹%.2f",
		c.BookID, c.Pickup, c.Drop, c.Date, c.Time, c.CabName, c.VehicleNo, c.DriverName, c.DriverContact, c.Amount)
}

// ConfirmationMessage assembles the outbound message for a snapshot.
func ConfirmationMessage(c Confirmation) Message {
	subject, body := RenderConfirmation(c)
	return Message{
		To:      c.Email,
		Phone:   c.Phone,
		Subject: subject,
		HTML:    body,
		Text:    ConfirmationText(c),
	}
}
