package mailer

import "fmt"

// Email templates. Subjects and bodies are kept together so the services
// only decide when to send, not what the message looks like.

func BookingReceived(name, orderID string, amount float64) (subject, html string) {
	subject = "Accommodation Booking Received"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>Your accommodation booking has been received. Please complete the payment of <b>₹%.2f</b> to confirm it.</p>
<p>Order reference: <b>%s</b></p>`, name, amount, orderID)
	return subject, html
}

func PaymentSuccess(name, orderID string, amount float64) (subject, html string) {
	subject = "Payment Confirmed - Accommodation Booked"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>We have received your payment of <b>₹%.2f</b>. Your accommodation is confirmed and a room will be allotted before your arrival.</p>
<p>Order reference: <b>%s</b></p>`, name, amount, orderID)
	return subject, html
}

func PaymentFailed(name, orderID string) (subject, html string) {
	subject = "Payment Verification Failed"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>We could not verify the payment for order <b>%s</b>. If the amount was deducted, please contact support with your payment reference.</p>`, name, orderID)
	return subject, html
}

func RoomAllotted(name, hostelName, roomNumber string) (subject, html string) {
	subject = "Room Allotted"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>Your room has been allotted: <b>%s</b>, room <b>%s</b>. Please carry a valid ID for check-in.</p>`, name, hostelName, roomNumber)
	return subject, html
}

func CheckedIn(name string) (subject, html string) {
	subject = "Checked In"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>You have been checked in. Welcome, and enjoy your stay!</p>`, name)
	return subject, html
}

func CheckedOut(name string) (subject, html string) {
	subject = "Checked Out"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>You have been checked out. Thank you for staying with us.</p>`, name)
	return subject, html
}

func LoginAlert(name string) (subject, html string) {
	subject = "New Login to Your Account"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>Your account was just used to log in to the accommodation portal. If this was not you, please change your password.</p>`, name)
	return subject, html
}

func TicketReceived(name, category string) (subject, html string) {
	subject = "Support Ticket Received"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>We have received your support ticket (<b>%s</b>) and will get back to you soon.</p>`, name, category)
	return subject, html
}

func SupportResponse(name, category, response string) (subject, html string) {
	subject = "Support Ticket Update"
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>Your support ticket (<b>%s</b>) has a response:</p>
<blockquote>%s</blockquote>`, name, category, response)
	return subject, html
}
