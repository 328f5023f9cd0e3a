// internal/application/usecase/subscriber_usecase.go
package usecase

import (
	"context"
	"log"

	"elanor/internal/adapters/out/mail"
	subdom "elanor/internal/domain/subscriber"
)

// SubscriberRepo is the persistence port required by SubscriberUsecase.
type SubscriberRepo interface {
	Create(ctx context.Context, s subdom.Subscriber) (string, error)
}

// SubscriberUsecase orchestrates mailing-list signups.
type SubscriberUsecase struct {
	repo   SubscriberRepo
	mailer mail.WelcomeMailerPort // nil = welcome mail disabled
}

func NewSubscriberUsecase(repo SubscriberRepo, mailer mail.WelcomeMailerPort) *SubscriberUsecase {
	return &SubscriberUsecase{repo: repo, mailer: mailer}
}

// Subscribe validates s, persists it and returns the store-generated ID.
// The welcome mail is best-effort: a send failure is logged and the signup
// still succeeds.
func (u *SubscriberUsecase) Subscribe(ctx context.Context, s subdom.Subscriber) (string, error) {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return "", err
	}

	id, err := u.repo.Create(ctx, s)
	if err != nil {
		return "", err
	}

	if u.mailer != nil {
		if err := u.mailer.SendWelcomeEmail(ctx, s.Email, s.Name); err != nil {
			log.Printf("[mail] ⚠️ welcome mail to %s failed: %v", s.Email, err)
		}
	}

	return id, nil
}
