package notification

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

// Service delivers transactional email over SMTP and chat messages
// through the Twilio WhatsApp REST API.
type Service struct {
	smtpHost string
	smtpPort int
	smtpUser string
	smtpPass string
	from     string

	twilioAccountSID string
	twilioAuthToken  string
	twilioFrom       string
	client           *http.Client
}

func NewService() *Service {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	return &Service{
		smtpHost:         os.Getenv("SMTP_HOST"),
		smtpPort:         port,
		smtpUser:         os.Getenv("SMTP_USER"),
		smtpPass:         os.Getenv("SMTP_PASSWORD"),
		from:             from,
		twilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		twilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		twilioFrom:       os.Getenv("TWILIO_WHATSAPP_FROM"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SendEmail delivers a plain-text message to a single recipient.
func (s *Service) SendEmail(to, subject, body string) error {
	if s.smtpHost == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.smtpHost, s.smtpPort, s.smtpUser, s.smtpPass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %v", to, err)
	}
	return nil
}

// SendBulkEmail delivers the same message to every recipient over one
// SMTP connection and reports the addresses that failed.
func (s *Service) SendBulkEmail(recipients []string, subject, body string) ([]string, error) {
	if s.smtpHost == "" {
		return nil, fmt.Errorf("SMTP is not configured")
	}

	d := gomail.NewDialer(s.smtpHost, s.smtpPort, s.smtpUser, s.smtpPass)
	sender, err := d.Dial()
	if err != nil {
		return recipients, fmt.Errorf("failed to connect to SMTP server: %v", err)
	}
	defer sender.Close()

	var failed []string
	m := gomail.NewMessage()
	for _, to := range recipients {
		m.SetHeader("From", s.from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)
		if err := gomail.Send(sender, m); err != nil {
			failed = append(failed, to)
		}
		m.Reset()
	}

	if len(failed) > 0 {
		return failed, fmt.Errorf("failed to deliver to %d of %d recipients", len(failed), len(recipients))
	}
	return nil, nil
}

type twilioMessageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// SendChatMessage posts a WhatsApp message through Twilio.
func (s *Service) SendChatMessage(toPhone, body string) error {
	if s.twilioAccountSID == "" || s.twilioAuthToken == "" {
		return fmt.Errorf("Twilio is not configured")
	}

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", s.twilioAccountSID)
	form := url.Values{}
	form.Set("From", normalizeWhatsApp(s.twilioFrom))
	form.Set("To", normalizeWhatsApp(toPhone))
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build Twilio request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.twilioAccountSID, s.twilioAuthToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Twilio: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Twilio response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed twilioMessageResponse
		if err := json.Unmarshal(respBody, &parsed); err == nil && parsed.ErrorMessage != "" {
			return fmt.Errorf("Twilio rejected the message: %s", parsed.ErrorMessage)
		}
		return fmt.Errorf("Twilio returned status %d", resp.StatusCode)
	}
	return nil
}

// normalizeWhatsApp ensures the whatsapp: channel prefix Twilio expects.
func normalizeWhatsApp(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "whatsapp:") {
		return phone
	}
	return "whatsapp:" + phone
}
