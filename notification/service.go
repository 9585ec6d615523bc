package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

type Service struct {
	mailer    Mailer
	from      string
	templates map[string]emailTemplate
	cb        *gobreaker.CircuitBreaker
	redis     *redis.Client
	log       *logrus.Logger
}

// NewService wires a Mailer behind a circuit breaker. rdb may be nil, in
// which case live pushes are skipped.
func NewService(mailer Mailer, from string, rdb *redis.Client, log *logrus.Logger) (*Service, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Service{
		mailer:    mailer,
		from:      from,
		templates: templates,
		cb:        CircuitBreaker("mail", log),
		redis:     rdb,
		log:       log,
	}, nil
}

func (s *Service) SendEmail(ctx context.Context, email Email) error {
	tmpl, ok := s.templates[email.Event]
	if !ok {
		return fmt.Errorf("unknown email event %q", email.Event)
	}
	subject, body, err := tmpl.render(email.Params)
	if err != nil {
		return fmt.Errorf("render %s: %w", email.Event, err)
	}

	msg := Message{
		From:        s.from,
		To:          email.To,
		Subject:     subject,
		HTML:        body,
		Attachments: email.Attachments,
	}
	_, err = s.cb.Execute(func() (interface{}, error) {
		return nil, s.mailer.Send(ctx, msg)
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{"event": email.Event, "to": email.To}).WithError(err).Error("email delivery failed")
		return err
	}

	s.log.WithFields(logrus.Fields{"event": email.Event, "to": email.To}).Info("email sent")
	return nil
}

func (s *Service) PushLive(ctx context.Context, userID uint, payload any) error {
	if s.redis == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.redis.Publish(ctx, Channel(userID), data).Err()
}

func CircuitBreaker(name string, log *logrus.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.WithFields(logrus.Fields{"breaker": name, "from": from.String(), "to": to.String()}).Warn("circuit breaker state changed")
			},
		},
	)
}
