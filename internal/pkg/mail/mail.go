// Package mail sends transactional email through the Resend HTTP API.
// Without an API key every send is a silent no-op, so deployments
// without mail credentials still work.
package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Config holds the Resend credentials and sender address.
type Config struct {
	APIKey string
	From   string
}

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers messages via Resend.
type Sender struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config) *Sender {
	if cfg.From == "" {
		cfg.From = "GigSpace <onboarding@resend.dev>"
	}
	return &Sender{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether an API key is configured.
func (s *Sender) Enabled() bool { return s.cfg.APIKey != "" }

// Send dispatches an email. Returns nil without sending when no API key
// is configured.
func (s *Sender) Send(msg Message) error {
	if !s.Enabled() {
		return nil
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"from":    s.cfg.From,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
	})

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("resend error %d: %s", resp.StatusCode, errResp.Message)
	}
	return nil
}

const contactAutoReplyTpl = `<p>Hi {{.Name}},</p><p>Thanks for reaching out! We've received your message and will get back to you shortly.</p>`

const applicationNotifyTpl = `<p>New application from {{.Name}} for {{.Role}}.</p><p><a href="{{.Portfolio}}">View Portfolio</a></p>`

// ContactAutoReplyData fills the contact acknowledgement email.
type ContactAutoReplyData struct {
	Name    string
	Subject string
}

// ApplicationNotifyData fills the new-application alert sent to admins.
type ApplicationNotifyData struct {
	Name      string
	Role      string
	Portfolio string
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendContactAutoReply acknowledges a contact-form message.
func (s *Sender) SendContactAutoReply(to string, data ContactAutoReplyData) error {
	html, err := renderTemplate(contactAutoReplyTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("We've received your message: %s", data.Subject),
		HTML:    html,
	})
}

// SendApplicationNotify alerts one admin about a new job application.
func (s *Sender) SendApplicationNotify(to string, data ApplicationNotifyData) error {
	html, err := renderTemplate(applicationNotifyTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("New Application: %s", data.Role),
		HTML:    html,
	})
}

// SendApplicationApproved delivers the operator-edited approval email.
// The body is pre-rendered HTML built from the site's email template.
func (s *Sender) SendApplicationApproved(to, html string) error {
	return s.Send(Message{
		To:      []string{to},
		Subject: "Your Application to GigSpace",
		HTML:    html,
	})
}
