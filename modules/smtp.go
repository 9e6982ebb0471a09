package modules

import (
	"errors"
	"net/smtp"
	"strconv"

	"github.com/scalaxyz/hausnation-backend/models"
)

// SendContactNotification forwards a contact-form submission to the
// configured recipient over SMTP. Callers are expected to treat failure as
// non-fatal, the submission log is the source of truth.
func SendContactNotification(config models.ConfigStruct, submission models.ContactRequest) error {
	if !config.SMTPEnabled || config.SMTPHost == "" {
		return errors.New("SMTP is not configured")
	}

	subject := submission.Subject
	if subject == "" {
		subject = "No subject"
	}

	body := "From: " + config.SMTPFrom + "\r\n" +
		"To: " + config.ContactRecipient + "\r\n" +
		"Subject: Contact form - " + subject + "\r\n" +
		"\r\n" +
		"From: " + submission.Name + " (" + submission.Email + ")\r\n\r\n" +
		submission.Message + "\r\n"

	address := config.SMTPHost + ":" + strconv.Itoa(config.SMTPPort)
	auth := smtp.PlainAuth("", config.SMTPUsername, config.SMTPPassword, config.SMTPHost)

	return smtp.SendMail(address, auth, config.SMTPFrom, []string{config.ContactRecipient}, []byte(body))
}
