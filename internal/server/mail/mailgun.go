package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

const (
	verificationSubject  = "Nuber Eats 회원 가입을 축하합니다."
	verificationTemplate = "verify-email"
)

// MailgunNotifier posts messages to the Mailgun HTTP API as multipart form
// data, authenticated with basic auth ("api" + API key).
type MailgunNotifier struct {
	apiKey   string
	domain   string
	fromName string
	baseURL  string
	client   *http.Client
}

func NewMailgunNotifier(apiKey, domain, fromName string) *MailgunNotifier {
	return &MailgunNotifier{
		apiKey:   apiKey,
		domain:   domain,
		fromName: fromName,
		baseURL:  "https://api.mailgun.net/v3",
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SendVerificationMail sends the verify-email template with the code and
// the recipient's address as template variables.
func (m *MailgunNotifier) SendVerificationMail(ctx context.Context, email, code string) bool {
	return m.sendMail(ctx, verificationSubject, verificationTemplate, email, []Var{
		{Key: "code", Value: code},
		{Key: "username", Value: email},
	})
}

func (m *MailgunNotifier) sendMail(ctx context.Context, subject, template, to string, vars []Var) bool {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	fields := map[string]string{
		"from":     fmt.Sprintf("%s <mailgun@%s>", m.fromName, m.domain),
		"to":       to,
		"subject":  subject,
		"template": template,
	}
	for k, v := range fields {
		if err := form.WriteField(k, v); err != nil {
			return false
		}
	}
	for _, v := range vars {
		if err := form.WriteField("v:"+v.Key, v.Value); err != nil {
			return false
		}
	}
	if err := form.Close(); err != nil {
		return false
	}

	url := fmt.Sprintf("%s/%s/messages", m.baseURL, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
