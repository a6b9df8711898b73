// internal/service/enrollment_service.go
package service

import (
	"log"
	"time"

	"github.com/luxehh/hfmessages-backend/internal/content"
	"github.com/luxehh/hfmessages-backend/internal/model"
	"github.com/luxehh/hfmessages-backend/internal/queue"
	"github.com/luxehh/hfmessages-backend/internal/repository"
)

// EnrollmentService creates campaign memberships and fires the welcome
// messages. Everything else about recipient CRUD belongs to the admin
// collaborator; the engine only needs enrollment because it has SMS side
// effects.
type EnrollmentService struct {
	Recipients   repository.RecipientRepositoryInterface
	Queue        queue.Queue
	BurstDelayMS int
	Now          func() time.Time
}

func (s *EnrollmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// EnrollCoaching creates a coaching recipient. New recipients start with the
// continue flag off: the program only starts once they reply YES to the
// terms message. Enrolling an existing address returns the existing record
// without re-sending anything.
func (s *EnrollmentService) EnrollCoaching(firstName, lastName, address string, startDate *time.Time) (*model.Recipient, bool, error) {
	existing, err := s.Recipients.GetByAddress(model.CampaignCoaching, address)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	// Anchor at midnight program time so day numbering is stable across the
	// day. An admin-provided start date is taken as a calendar date, not an
	// instant, so its own timezone never shifts the day.
	y, m, d := s.now().In(coachingLoc).Date()
	if startDate != nil {
		y, m, d = startDate.Date()
	}
	anchor := time.Date(y, m, d, 0, 0, 0, 0, coachingLoc)

	r := &model.Recipient{
		Campaign:         model.CampaignCoaching,
		FirstName:        firstName,
		LastName:         lastName,
		Address:          address,
		Active:           true,
		ContinueProgram:  false,
		EnrollmentAnchor: anchor,
	}
	if err := s.Recipients.Create(r); err != nil {
		return nil, false, err
	}

	if err := s.Queue.Publish(queue.TopicBurstSends, queue.BurstJob{
		To:       address,
		Messages: []string{content.WelcomeMessage, content.TermsMessage},
		DelayMS:  s.BurstDelayMS,
	}); err != nil {
		// Enrollment stands even when the welcome burst cannot be queued.
		log.Printf("⚠️ Failed to enqueue welcome messages for %s: %v", address, err)
	}
	return r, true, nil
}

// EnrollNewsletter creates an active newsletter subscription anchored now and
// sends the subscription confirmation.
func (s *EnrollmentService) EnrollNewsletter(firstName, lastName, address string) (*model.Recipient, bool, error) {
	existing, err := s.Recipients.GetByAddress(model.CampaignNewsletter, address)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	r := &model.Recipient{
		Campaign:         model.CampaignNewsletter,
		FirstName:        firstName,
		LastName:         lastName,
		Address:          address,
		Active:           true,
		EnrollmentAnchor: s.now(),
	}
	if err := s.Recipients.Create(r); err != nil {
		return nil, false, err
	}

	welcome := RenderTemplate(content.NewsletterWelcome, map[string]string{"first_name": firstName})
	if err := s.Queue.Publish(queue.TopicBurstSends, queue.BurstJob{
		To:       address,
		Messages: []string{welcome},
	}); err != nil {
		log.Printf("⚠️ Failed to enqueue welcome message for %s: %v", address, err)
	}
	return r, true, nil
}
