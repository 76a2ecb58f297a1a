package mailer

import (
	"bytes"
	"html/template"
	"sync"

	"gopkg.in/gomail.v2"

	"github.com/nawi-studio/nawi-backend/internal/logger"
	"github.com/nawi-studio/nawi-backend/internal/metrics"
)

// Dialer sends assembled messages. Satisfied by *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer dispatches templated notification emails through a bounded
// in-process worker pool. Enqueueing never blocks the caller: when the
// queue is full the message is dropped with a log entry. Delivery
// failures are logged and swallowed.
type Mailer struct {
	dialer     Dialer
	sender     string
	adminEmail string
	queue      chan *gomail.Message
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// New creates a Mailer and starts its workers.
func New(dialer Dialer, sender, adminEmail string, workers int) *Mailer {
	if workers < 1 {
		workers = 1
	}

	m := &Mailer{
		dialer:     dialer,
		sender:     sender,
		adminEmail: adminEmail,
		queue:      make(chan *gomail.Message, 64),
	}

	m.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go m.worker()
	}
	return m
}

// NewSMTP creates a Mailer backed by an SMTP relay.
func NewSMTP(host string, port int, username, password, sender, adminEmail string, workers int) *Mailer {
	return New(gomail.NewDialer(host, port, username, password), sender, adminEmail, workers)
}

// Close stops accepting messages and waits for in-flight sends.
func (m *Mailer) Close() {
	m.closeOnce.Do(func() {
		close(m.queue)
	})
	m.wg.Wait()
}

func (m *Mailer) worker() {
	defer m.wg.Done()
	for msg := range m.queue {
		if err := m.dialer.DialAndSend(msg); err != nil {
			logger.Log.Errorw("failed to send email", "err", err)
		}
	}
}

func (m *Mailer) enqueue(kind string, msg *gomail.Message) {
	select {
	case m.queue <- msg:
		metrics.IncrementEmailQueued(kind)
	default:
		logger.Log.Errorw("mail queue full, dropping message",
			"subject", msg.GetHeader("Subject"))
	}
}

// QueueContactNotification emails the admin about a new contact form
// submission.
func (m *Mailer) QueueContactNotification(name, email string, phone, subject *string, message string) {
	data := contactData{
		Name:    name,
		Email:   email,
		Phone:   orNotProvided(phone),
		Subject: orNotProvided(subject),
		Message: message,
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", "New Contact Form Submission: "+data.Subject)
	msg.SetBody("text/plain", renderContactText(data))
	msg.AddAlternative("text/html", renderHTML(contactHTMLTemplate, data))

	m.enqueue("contact", msg)
}

// QueueRequestConfirmation emails the requester that their design
// request was received.
func (m *Mailer) QueueRequestConfirmation(name, email, serviceType string) {
	data := requestData{Name: name, ServiceType: serviceType}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your Design Request Has Been Received - Nawi")
	msg.SetBody("text/plain", renderRequestText(data))
	msg.AddAlternative("text/html", renderHTML(requestHTMLTemplate, data))

	m.enqueue("request", msg)
}

func orNotProvided(s *string) string {
	if s == nil || *s == "" {
		return "Not provided"
	}
	return *s
}

func renderHTML(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logger.Log.Errorw("failed to render email template", "err", err)
		return ""
	}
	return buf.String()
}
