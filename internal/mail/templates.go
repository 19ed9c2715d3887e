package mail

import (
	"fmt"
	"html"
	"time"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/domain"
)

// notSpecified is the display default for optional fields in email
// bodies only; storage keeps the submitted values verbatim.
const notSpecified = "Not specified"

// OwnerNotificationSubject is the subject line for the site-owner notice.
func OwnerNotificationSubject(inquiry domain.Inquiry) string {
	return fmt.Sprintf("New Inquiry from %s", inquiry.Name)
}

// OwnerNotificationBody renders the site-owner notice for a new inquiry.
func OwnerNotificationBody(inquiry domain.Inquiry, siteName string) string {
	budget := inquiry.Budget
	if budget == "" {
		budget = notSpecified
	}
	timeline := inquiry.Timeline
	if timeline == "" {
		timeline = notSpecified
	}
	// submitted values are untrusted
	name := html.EscapeString(inquiry.Name)
	email := html.EscapeString(inquiry.Email)
	description := html.EscapeString(inquiry.Description)
	budget = html.EscapeString(budget)
	timeline = html.EscapeString(timeline)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #FFC107; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
    .header h1 { color: #000; margin: 0; font-size: 24px; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
    .field { margin-bottom: 20px; padding: 15px; background: #fff; border-radius: 6px; border-left: 4px solid #FFC107; }
    .field-label { font-weight: bold; color: #555; margin-bottom: 5px; font-size: 12px; text-transform: uppercase; }
    .field-value { font-size: 16px; color: #333; }
    .footer { text-align: center; margin-top: 20px; color: #888; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Inquiry Received</h1>
    </div>
    <div class="content">
      <div class="field">
        <div class="field-label">Name</div>
        <div class="field-value">%s</div>
      </div>
      <div class="field">
        <div class="field-label">Email</div>
        <div class="field-value"><a href="mailto:%s">%s</a></div>
      </div>
      <div class="field">
        <div class="field-label">Project Description</div>
        <div class="field-value">%s</div>
      </div>
      <div class="field">
        <div class="field-label">Budget</div>
        <div class="field-value">%s</div>
      </div>
      <div class="field">
        <div class="field-label">Timeline</div>
        <div class="field-value">%s</div>
      </div>
    </div>
    <div class="footer">
      Sent from %s Website<br/>
      %s
    </div>
  </div>
</body>
</html>`, name, email, email, description, budget, timeline,
		siteName, time.Now().Format("1/2/2006, 3:04:05 PM"))
}

// ConfirmationSubject is the subject line for the submitter confirmation.
func ConfirmationSubject(siteName string) string {
	return fmt.Sprintf("We received your inquiry - %s", siteName)
}

// ConfirmationBody renders the confirmation sent back to the submitter.
func ConfirmationBody(name, siteName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #FFC107; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
    .header h1 { color: #000; margin: 0; font-size: 28px; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; text-align: center; }
    .footer { text-align: center; margin-top: 20px; color: #888; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Thank You, %s!</h1>
    </div>
    <div class="content">
      <h2>Your inquiry has been received!</h2>
      <p>We have received your inquiry and will review it shortly.</p>
      <p>We'll get back to you within 24-48 hours.</p>
      <p style="margin-top: 30px;">Best regards,<br/><strong>%s</strong></p>
    </div>
    <div class="footer">
      &copy; %s
    </div>
  </div>
</body>
</html>`, html.EscapeString(name), siteName, siteName)
}

// ReplySubject is the subject line for an admin reply.
func ReplySubject(siteName string) string {
	return fmt.Sprintf("Reply to your inquiry - %s", siteName)
}

// ReplyBody renders the admin's reply to the original submitter.
func ReplyBody(name, adminMessage, siteName string) string {
	return fmt.Sprintf(`<h2>Hi %s,</h2>
<p>%s</p>
<p>Best regards,<br/>%s</p>`, html.EscapeString(name), html.EscapeString(adminMessage), siteName)
}
