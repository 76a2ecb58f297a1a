package mailer

import (
	"fmt"
	"html/template"
)

type contactData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type requestData struct {
	Name        string
	ServiceType string
}

var contactHTMLTemplate = template.Must(template.New("contact").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
    <h2 style="color: #5B21B6; border-bottom: 2px solid #3B82F6; padding-bottom: 10px;">New Contact Form Submission</h2>
    <div style="background-color: white; padding: 20px; border-radius: 8px; margin-top: 20px;">
      <h3 style="color: #5B21B6;">Contact Details:</h3>
      <p><strong>Name:</strong> {{.Name}}</p>
      <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
      <p><strong>Phone:</strong> {{.Phone}}</p>
      <p><strong>Subject:</strong> {{.Subject}}</p>
      <h3 style="color: #5B21B6; margin-top: 20px;">Message:</h3>
      <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; border-left: 3px solid #3B82F6;">{{.Message}}</div>
    </div>
    <div style="text-align: center; margin-top: 30px; color: #666; font-size: 12px;">
      <p>This email was sent from the Nawi website contact form</p>
    </div>
  </div>
</body>
</html>`))

var requestHTMLTemplate = template.Must(template.New("request").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
    <h2 style="color: #5B21B6; text-align: center;">Thank You for Your Request!</h2>
    <div style="background-color: white; padding: 20px; border-radius: 8px; margin-top: 20px;">
      <p>Dear {{.Name}},</p>
      <p>We have received your design request for <strong>{{.ServiceType}}</strong>.</p>
      <p>Our team will review your requirements and get back to you within 24 hours with a detailed proposal and timeline.</p>
      <h3 style="color: #5B21B6;">What's Next?</h3>
      <ul>
        <li>Our design team will analyze your requirements</li>
        <li>We'll prepare a customized proposal for your project</li>
        <li>You'll receive a detailed quote and timeline</li>
        <li>Once approved, we'll start working on your design</li>
      </ul>
      <div style="text-align: center; margin-top: 30px;">
        <p style="color: #5B21B6; font-weight: bold;">Thank you for choosing Nawi!</p>
        <p style="color: #666;">We're excited to bring your vision to life</p>
      </div>
    </div>
  </div>
</body>
</html>`))

func renderContactText(d contactData) string {
	return fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s
Phone: %s
Subject: %s

Message:
%s
`, d.Name, d.Email, d.Phone, d.Subject, d.Message)
}

func renderRequestText(d requestData) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your design request!

We have received your request for %s.

Our team will review your requirements and get back to you within 24 hours.

Best regards,
Nawi Team
`, d.Name, d.ServiceType)
}
