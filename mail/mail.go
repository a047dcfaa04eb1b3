package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"
	"schoolapp-backend/errs"
	"schoolapp-backend/log"
)

// Mailer sends the welcome mail after a completed onboarding.
type Mailer struct {
	mg     *mailgun.MailgunImpl
	sender string
}

func NewMailer(domain, apiKey, sender string) *Mailer {
	return &Mailer{
		mg:     mailgun.NewMailgun(domain, apiKey),
		sender: sender,
	}
}

func (m *Mailer) SendWelcome(email, username, userid string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour MySchool account has been created. Your user ID is %s.\nUse it when contacting the school office.\n", username, userid)
	msg := m.mg.NewMessage(m.sender, "Welcome to MySchool", body, email)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _, err := m.mg.Send(ctx, msg)
	if err != nil {
		log.Logger.Error("error sending email", zap.String("email", email), zap.Error(err))
		return errs.ErrMail
	}

	return nil
}
