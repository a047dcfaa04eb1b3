package handler

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"schoolapp-backend/entity"
	"schoolapp-backend/events"
	"schoolapp-backend/log"
	"schoolapp-backend/mail"
)

// Notifier is told about a completed onboarding. Implementations handle
// their own failures; nothing here can change the client's response.
type Notifier interface {
	Onboarded(u *entity.User)
}

type EventNotifier struct{}

func (EventNotifier) Onboarded(u *entity.User) {
	err := events.PublishOnboarded(&events.OnboardedEvent{
		ID:       uuid.New(),
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		UserType: u.UserType,
		At:       time.Now(),
	})
	if err != nil {
		log.Logger.Error("queue error", zap.String("userid", u.UserID), zap.Error(err))
	}
}

type MailNotifier struct {
	Mailer *mail.Mailer
}

func (n MailNotifier) Onboarded(u *entity.User) {
	if err := n.Mailer.SendWelcome(u.Email, u.Username, u.UserID); err != nil {
		log.Logger.Error("welcome mail failed", zap.String("userid", u.UserID), zap.Error(err))
	}
}
