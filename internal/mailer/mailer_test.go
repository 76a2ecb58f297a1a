package mailer

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	mu   sync.Mutex
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m...)
	return f.err
}

func (f *fakeDialer) messages() []*gomail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*gomail.Message(nil), f.sent...)
}

func TestMailer_ContactNotificationGoesToAdmin(t *testing.T) {
	dialer := &fakeDialer{}
	m := New(dialer, "noreply@nawi.example", "admin@nawi.example", 2)

	phone := "+20123456789"
	m.QueueContactNotification("Alice", "alice@example.com", &phone, nil, "hello there")
	m.Close()

	sent := dialer.messages()
	assert.Len(t, sent, 1)
	assert.Equal(t, []string{"admin@nawi.example"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"noreply@nawi.example"}, sent[0].GetHeader("From"))
	// Missing subject falls back to a placeholder.
	assert.Contains(t, sent[0].GetHeader("Subject")[0], "Not provided")
}

func TestMailer_RequestConfirmationGoesToRequester(t *testing.T) {
	dialer := &fakeDialer{}
	m := New(dialer, "noreply@nawi.example", "admin@nawi.example", 1)

	m.QueueRequestConfirmation("Bob", "bob@example.com", "logo")
	m.Close()

	sent := dialer.messages()
	assert.Len(t, sent, 1)
	assert.Equal(t, []string{"bob@example.com"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Your Design Request Has Been Received - Nawi"}, sent[0].GetHeader("Subject"))
}

func TestMailer_SendFailureIsSwallowed(t *testing.T) {
	dialer := &fakeDialer{err: errors.New("smtp unreachable")}
	m := New(dialer, "noreply@nawi.example", "admin@nawi.example", 1)

	assert.NotPanics(t, func() {
		m.QueueRequestConfirmation("Bob", "bob@example.com", "logo")
		m.Close()
	})
	assert.Len(t, dialer.messages(), 1)
}

func TestMailer_CloseIsIdempotent(t *testing.T) {
	m := New(&fakeDialer{}, "noreply@nawi.example", "admin@nawi.example", 1)
	m.Close()
	assert.NotPanics(t, m.Close)
}

func TestTemplates_Render(t *testing.T) {
	html := renderHTML(contactHTMLTemplate, contactData{
		Name:    "Alice",
		Email:   "alice@example.com",
		Phone:   "Not provided",
		Subject: "Quote",
		Message: "Need a logo",
	})
	assert.Contains(t, html, "Alice")
	assert.Contains(t, html, "mailto:alice@example.com")
	assert.Contains(t, html, "Need a logo")

	text := renderRequestText(requestData{Name: "Bob", ServiceType: "branding"})
	assert.True(t, strings.Contains(text, "Bob") && strings.Contains(text, "branding"))
}
