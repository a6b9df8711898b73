// internal/service/reply_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/luxehh/hfmessages-backend/internal/content"
	appErrors "github.com/luxehh/hfmessages-backend/internal/errors"
	"github.com/luxehh/hfmessages-backend/internal/model"
	"github.com/luxehh/hfmessages-backend/internal/queue"
	"github.com/luxehh/hfmessages-backend/internal/repository"
)

// ReplyService routes inbound SMS replies into state transitions. The return
// value is the immediate webhook reply (TwiML body); multi-message bursts go
// through the queue so the webhook acknowledges without waiting on the
// provider.
type ReplyService struct {
	Recipients repository.RecipientRepositoryInterface
	Pending    repository.PendingRepositoryInterface
	Queue      queue.Queue

	BurstDelayMS int              // spacing inside onboarding bursts
	BonusDelayMS int              // wait before the post-restart day-1 send
	Now          func() time.Time // test hook
}

func (s *ReplyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// HandleCoachingReply applies the 30-day program transition table. Replies
// from unknown numbers get a polite rejection; every other input maps to a
// command and a total transition, so malformed text is never an error.
func (s *ReplyService) HandleCoachingReply(from, body string) (string, error) {
	r, err := s.Recipients.GetByAddress(model.CampaignCoaching, from)
	if err != nil {
		return "", err
	}
	if r == nil {
		return content.NotRecognized, nil
	}

	cmd, keyword := ParseCommand(body)
	log.Printf("📩 Coaching reply from %s: %s", from, cmd)

	pending, err := s.Pending.Get(from)
	if err != nil {
		return "", err
	}

	switch cmd {
	case CommandYes:
		if pending != nil {
			// Completion prompt answered: restart from day 1 and follow up
			// with the day-1 morning content as a bonus send.
			if err := s.restart(r); err != nil {
				return "", err
			}
			if err := s.Pending.Delete(from); err != nil {
				log.Printf("⚠️ Failed to clear pending confirmation for %s: %v", from, err)
			}
			if bonus, ok := content.Coaching(1, model.SlotMorning); ok {
				s.publishBurst(queue.BurstJob{
					To:             from,
					Messages:       []string{bonus},
					InitialDelayMS: s.BonusDelayMS,
				})
			}
			return content.RestartAck, nil
		}
		if !r.Active || !r.ContinueProgram {
			// Opt-in from the inactive side: restart and send the onboarding
			// sequence. Deliberately no bonus day-1 content in this branch.
			if err := s.restart(r); err != nil {
				return "", err
			}
			startDate := s.now().In(coachingLoc).Format("01/02/2006")
			msgs := make([]string, len(content.OnboardingSequence))
			for i, m := range content.OnboardingSequence {
				msgs[i] = RenderTemplate(m, map[string]string{"start_date": startDate})
			}
			s.publishBurst(queue.BurstJob{To: from, Messages: msgs, DelayMS: s.BurstDelayMS})
			return "", nil
		}
		// Yes while already active is a no-op.
		return "", nil

	case CommandNo, CommandStop:
		if err := s.saveState(r, func(r *model.Recipient) {
			r.ContinueProgram = false
		}); err != nil {
			return "", err
		}
		if pending != nil {
			if err := s.Pending.Delete(from); err != nil {
				log.Printf("⚠️ Failed to clear pending confirmation for %s: %v", from, err)
			}
		}
		return content.UnsubscribeAck, nil

	case CommandStart:
		// Historical no-op: START is reserved by the carrier-level opt-in
		// flow and intentionally does not restart the program.
		return "", nil

	case CommandKeyword:
		return content.KeywordLinks[keyword], nil
	}

	return content.KeywordMenu, nil
}

// restart reactivates a coaching recipient and resets the anchor, so the
// cadence restarts at day 1 as of the reply.
func (s *ReplyService) restart(r *model.Recipient) error {
	now := s.now()
	return s.saveState(r, func(r *model.Recipient) {
		r.Active = true
		r.ContinueProgram = true
		r.EnrollmentAnchor = now
	})
}

// HandleNewsletterReply applies the 12-month campaign transitions. All of
// them are idempotent: a Yes while already active just resets the anchor.
func (s *ReplyService) HandleNewsletterReply(from, body string) (string, error) {
	r, err := s.Recipients.GetByAddress(model.CampaignNewsletter, from)
	if err != nil {
		return "", err
	}
	if r == nil {
		return content.NotRecognized, nil
	}

	cmd, _ := ParseCommand(body)
	log.Printf("📩 Newsletter reply from %s: %s", from, cmd)

	switch cmd {
	case CommandYes, CommandStart:
		now := s.now()
		if err := s.saveState(r, func(r *model.Recipient) {
			r.Active = true
			r.EnrollmentAnchor = now
		}); err != nil {
			return "", err
		}
		return RenderTemplate(content.RenewalAck, map[string]string{"first_name": r.FirstName}), nil

	case CommandNo, CommandStop:
		if err := s.saveState(r, func(r *model.Recipient) {
			r.Active = false
		}); err != nil {
			return "", err
		}
		return RenderTemplate(content.CancelAck, map[string]string{"first_name": r.FirstName}), nil
	}

	return content.RenewCancelMenu, nil
}

// saveState applies mutate under the optimistic version check, re-reading
// and retrying once on a concurrent-update conflict.
func (s *ReplyService) saveState(r *model.Recipient, mutate func(*model.Recipient)) error {
	mutate(r)
	err := s.Recipients.UpdateState(r)

	var conflict *appErrors.ErrStateConflict
	if !errors.As(err, &conflict) {
		return err
	}

	fresh, getErr := s.Recipients.GetByAddress(r.Campaign, r.Address)
	if getErr != nil {
		return getErr
	}
	if fresh == nil {
		return appErrors.NewRecipientNotFound(r.Address)
	}
	mutate(fresh)
	if err := s.Recipients.UpdateState(fresh); err != nil {
		return err
	}
	*r = *fresh
	return nil
}

func (s *ReplyService) publishBurst(job queue.BurstJob) {
	if err := s.Queue.Publish(queue.TopicBurstSends, job); err != nil {
		log.Printf("⚠️ Failed to enqueue burst for %s: %v", job.To, err)
	}
}
