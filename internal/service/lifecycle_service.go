// internal/service/lifecycle_service.go
package service

import (
	"log"
	"time"

	"github.com/luxehh/hfmessages-backend/internal/cadence"
	"github.com/luxehh/hfmessages-backend/internal/content"
	"github.com/luxehh/hfmessages-backend/internal/model"
	"github.com/luxehh/hfmessages-backend/internal/provider"
	"github.com/luxehh/hfmessages-backend/internal/repository"
)

// DefaultTimeoutWindow is how long a completion prompt may sit unanswered
// before it counts as an implicit No.
const DefaultTimeoutWindow = 8 * time.Hour

// LifecycleService runs the sweeps that silently advance recipient state:
// confirmation timeouts, newsletter auto-completion, and the resubscription
// prompt. Each runs independently of the send sweeps; ordering on shared
// days comes from the trigger schedule.
type LifecycleService struct {
	Recipients    repository.RecipientRepositoryInterface
	Pending       repository.PendingRepositoryInterface
	Sender        provider.Sender
	TimeoutWindow time.Duration // zero means DefaultTimeoutWindow
	SendDelay     time.Duration
	Now           func() time.Time
}

func (s *LifecycleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *LifecycleService) window() time.Duration {
	if s.TimeoutWindow > 0 {
		return s.TimeoutWindow
	}
	return DefaultTimeoutWindow
}

// RunTimeoutSweep treats every pending confirmation older than the window as
// an implicit No: the recipient goes inactive, gets the closing message, and
// the entry is removed. The threshold is measured from the stored sent_at,
// so the sweep interval only bounds how late we notice.
func (s *LifecycleService) RunTimeoutSweep() (int, error) {
	now := s.now()
	log.Println("🔎 Checking for unanswered completion prompts...")

	entries, err := s.Pending.ListOlderThan(now.Add(-s.window()))
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, entry := range entries {
		r, err := s.Recipients.GetByAddress(model.CampaignCoaching, entry.Address)
		if err != nil {
			log.Printf("⚠️ Failed to load recipient %s: %v", entry.Address, err)
			continue
		}
		if r == nil {
			// Recipient removed by the admin; drop the orphaned entry.
			if err := s.Pending.Delete(entry.Address); err != nil {
				log.Printf("⚠️ Failed to delete orphaned pending entry %s: %v", entry.Address, err)
			}
			continue
		}

		r.ContinueProgram = false
		if err := s.Recipients.UpdateState(r); err != nil {
			// Conflict or store trouble: leave the entry, next run re-evaluates.
			log.Printf("⚠️ Failed to close program for %s: %v", entry.Address, err)
			continue
		}

		if _, err := s.Sender.Send(entry.Address, content.ClosingMessage); err != nil {
			// State is already closed (idempotent); keep the entry so the
			// closing message is retried next run.
			log.Printf("⚠️ Failed to send closing message to %s: %v", entry.Address, err)
			continue
		}
		if err := s.Pending.Delete(entry.Address); err != nil {
			log.Printf("⚠️ Failed to delete pending entry %s: %v", entry.Address, err)
			continue
		}

		log.Printf("✅ No response from %s after %s; program closed", entry.Address, s.window())
		closed++
	}
	return closed, nil
}

// RunAutoCompletionSweep disables newsletter subscriptions that have received
// all 12 issues, on their anniversary day. Scheduled before the send sweep
// so a just-completed recipient is not also sent that day's issue.
func (s *LifecycleService) RunAutoCompletionSweep() (int, error) {
	now := s.now()
	log.Println("🔄 Running newsletter auto-completion sweep...")

	recipients, err := s.Recipients.ListActive(model.CampaignNewsletter)
	if err != nil {
		return 0, err
	}

	disabled := 0
	for i := range recipients {
		r := &recipients[i]
		if cadence.MonthsSinceAnchor(r.EnrollmentAnchor, now, newsletterLoc) < cadence.NewsletterMonths {
			continue
		}
		if !cadence.AnniversaryDayMatches(r.EnrollmentAnchor, now, newsletterLoc) {
			continue
		}

		r.Active = false
		if err := s.Recipients.UpdateState(r); err != nil {
			log.Printf("⚠️ Failed to disable subscription for %s: %v", r.Address, err)
			continue
		}
		log.Printf("✅ Disabled subscription for %s %s (%s) - completed 12 newsletters",
			r.FirstName, r.LastName, r.Address)
		disabled++
	}

	log.Printf("📊 Summary: %d subscriptions auto-disabled", disabled)
	return disabled, nil
}

// RunResubscriptionSweep sends the renew/cancel prompt to every recipient in
// exactly their 13th month, active or not: an auto-disabled subscriber
// still gets asked. Replies land on the newsletter webhook; no pending
// confirmation is created for this prompt.
func (s *LifecycleService) RunResubscriptionSweep() (int, error) {
	now := s.now()
	log.Println("📧 Running resubscription reminder sweep...")

	recipients, err := s.Recipients.ListAll(model.CampaignNewsletter)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range recipients {
		r := &recipients[i]
		if cadence.MonthsSinceAnchor(r.EnrollmentAnchor, now, newsletterLoc) != cadence.NewsletterMonths {
			continue
		}
		if !cadence.AnniversaryDayMatches(r.EnrollmentAnchor, now, newsletterLoc) {
			continue
		}

		body := RenderTemplate(content.ResubscriptionPrompt, map[string]string{"first_name": r.FirstName})
		if _, err := s.Sender.Send(r.Address, body); err != nil {
			log.Printf("⚠️ Failed to send resubscription reminder to %s: %v", r.Address, err)
			continue
		}
		log.Printf("✅ Resubscription reminder sent to %s %s (%s)", r.FirstName, r.LastName, r.Address)
		sent++

		if s.SendDelay > 0 {
			time.Sleep(s.SendDelay)
		}
	}

	log.Printf("📊 Summary: %d resubscription reminders sent", sent)
	return sent, nil
}
