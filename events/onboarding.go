package events

import (
	"bytes"
	"context"
	"encoding/gob"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"schoolapp-backend/log"
)

// OnboardedEvent is broadcast after every completed onboarding so downstream
// consumers (notifications, reporting) can pick up new accounts.
type OnboardedEvent struct {
	ID       uuid.UUID
	UserID   string
	Username string
	Email    string
	UserType string
	At       time.Time
}

func ConsumeOnboarded(ctx context.Context) (<-chan *OnboardedEvent, error) {
	EnsureEvents()

	ch := make(chan *OnboardedEvent)

	rch, err := e.Conn.Channel()
	if err != nil {
		panic(err)
	}
	q, err := rch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return nil, err
	}

	err = rch.QueueBind(
		q.Name,
		"",
		OnboardingExchange,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	msgs, err := rch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	go func() {
		c := make(chan amqp.Delivery)

		go func() {
			for d := range msgs {
				c <- d
			}
		}()

		for {
			select {
			case <-ctx.Done():
				err := rch.Close()
				if err != nil {
					log.Logger.Error("unable to close channel", zap.Error(err))
				}
				return
			case d := <-c:
				var p *OnboardedEvent
				b := bytes.NewReader(d.Body)
				err := gob.NewDecoder(b).Decode(&p)
				if err != nil {
					log.Logger.Error("unable to decode event", zap.Error(err))
				}

				ch <- p
			}
		}
	}()

	return ch, nil
}

func PublishOnboarded(event *OnboardedEvent) error {
	EnsureEvents()

	var b bytes.Buffer
	err := gob.NewEncoder(&b).Encode(event)
	if err != nil {
		return err
	}

	rch, err := e.Conn.Channel()
	if err != nil {
		panic(err)
	}
	defer rch.Close()
	err = rch.Publish(OnboardingExchange, "", false, false, amqp.Publishing{
		ContentType: "application/gob",
		Body:        b.Bytes(),
	})
	if err != nil {
		return err
	}

	return nil
}
