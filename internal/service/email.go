package service

import (
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dishcovery/backend/internal/models"
)

// EmailService sends outbound mail. Its failure never affects the request
// that triggered it; search digests are fire-and-forget.
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func NewEmailService() IEmailService {
	return &EmailService{
		smtpHost:     readSecret("smtp_host"),
		smtpPort:     readSecret("smtp_port"),
		smtpUsername: readSecret("smtp_username"),
		smtpPassword: readSecret("smtp_password"),
		fromEmail:    readSecret("email_from"),
		fromName:     readSecret("email_from_name"),
	}
}

// SendEmail delivers a plain-text message, or logs it when SMTP is not
// configured so development setups stay working.
func (s *EmailService) SendEmail(to, subject, body string) error {
	if s.smtpHost == "" || s.smtpPort == "" {
		fmt.Printf("SMTP not configured, logging email:\n")
		fmt.Printf("To: %s\n", to)
		fmt.Printf("Subject: %s\n", subject)
		fmt.Printf("Body:\n%s\n", body)
		fmt.Printf("--- End Email ---\n")
		return nil
	}

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendSearchDigest mails the recipes found by a filter search, each with a
// YouTube search link for the recipe name.
func (s *EmailService) SendSearchDigest(to, cuisine string, recipes []*models.Recipe) error {
	return s.SendEmail(to, digestSubject(cuisine), digestBody(recipes))
}

func digestSubject(cuisine string) string {
	if cuisine == "" {
		return "Recommended Recipes! Enjoy your meal!!"
	}
	caser := cases.Title(language.English)
	return fmt.Sprintf("Recommended %s Recipes! Enjoy your meal!!", caser.String(cuisine))
}

func digestBody(recipes []*models.Recipe) string {
	var body strings.Builder
	for i, recipe := range recipes {
		fmt.Fprintf(&body, "\nRecipe %d: \n%s\n", i+1, recipe.Name)
		fmt.Fprintf(&body, "Youtube Link: https://www.youtube.com/results?search_query=%s\n\n",
			strings.ReplaceAll(recipe.Name, " ", "+"))
	}
	return body.String()
}
