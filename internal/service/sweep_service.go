// internal/service/sweep_service.go
package service

import (
	"log"
	"strconv"
	"time"

	"github.com/luxehh/hfmessages-backend/internal/cadence"
	"github.com/luxehh/hfmessages-backend/internal/content"
	appErrors "github.com/luxehh/hfmessages-backend/internal/errors"
	"github.com/luxehh/hfmessages-backend/internal/model"
	"github.com/luxehh/hfmessages-backend/internal/provider"
	"github.com/luxehh/hfmessages-backend/internal/repository"
)

// SweepService runs the scheduled send sweeps. Each sweep evaluates every
// eligible recipient independently: delivery failures and missing content
// are logged and skipped, never aborting the pass, and a fixed delay between
// deliveries keeps the provider within throughput limits.
type SweepService struct {
	Recipients repository.RecipientRepositoryInterface
	Content    repository.ContentRepositoryInterface
	Pending    repository.PendingRepositoryInterface
	Log        repository.MessageLogRepositoryInterface
	Sender     provider.Sender
	SendDelay  time.Duration
	Now        func() time.Time // test hook, defaults to time.Now
}

// SweepResult summarizes one sweep pass.
type SweepResult struct {
	Campaign string `json:"campaign"`
	Slot     string `json:"slot,omitempty"`
	Sent     int    `json:"sent"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}

func (s *SweepService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SweepService) pause() {
	if s.SendDelay > 0 {
		time.Sleep(s.SendDelay)
	}
}

// RunCoachingSweep delivers one time-of-day slot of the 30-day program.
func (s *SweepService) RunCoachingSweep(slot string) (*SweepResult, error) {
	now := s.now()
	log.Printf("📨 Running coaching %s sweep", slot)

	recipients, err := s.Recipients.ListSendable(model.CampaignCoaching)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Campaign: model.CampaignCoaching, Slot: slot}
	for i := range recipients {
		r := &recipients[i]

		if cadence.TooEarly(r.EnrollmentAnchor, now, coachingLoc) {
			log.Printf("⏭️ TooEarly: %s starts %s", r.Address, r.EnrollmentAnchor.Format("2006-01-02"))
			result.Skipped++
			continue
		}
		if cadence.CoachingComplete(r.EnrollmentAnchor, now, coachingLoc) {
			// Past the program the only remaining duty is the completion
			// prompt, still owed when the day-30 evening pass failed.
			s.ensureCompletionPrompt(r.Address, now)
			log.Printf("⏭️ AlreadyComplete: %s finished the program", r.Address)
			result.Skipped++
			continue
		}

		day := cadence.ElapsedDays(r.EnrollmentAnchor, now, coachingLoc)

		delivered, err := s.Log.AlreadySent(model.CampaignCoaching, r.Address, day, slot)
		if err != nil {
			log.Printf("⚠️ Sent-log lookup failed for %s: %v", r.Address, err)
			result.Failed++
			continue
		}
		if delivered {
			result.Skipped++
			continue
		}

		body, ok := content.Coaching(day, slot)
		if !ok {
			log.Printf("⚠️ %v", appErrors.NewContentMissing(model.CampaignCoaching, day, slot))
			result.Skipped++
			continue
		}

		if err := s.deliver(model.CampaignCoaching, r.Address, day, slot, body); err != nil {
			log.Printf("⚠️ DeliveryFailure: day %d %s to %s: %v", day, slot, r.Address, err)
			result.Failed++
		} else {
			log.Printf("✅ Day %d %s message sent to %s", day, slot, r.Address)
			result.Sent++
		}

		// The day-30 evening pass closes the cycle: the one-time completion
		// prompt goes out and the recipient enters PENDING_CONFIRMATION.
		// The prompt is guarded by its own sent-log cell, not by the content
		// send, so a provider failure here is retried on later sweeps.
		if day == cadence.CoachingDays && slot == model.SlotEvening {
			s.ensureCompletionPrompt(r.Address, now)
		}

		s.pause()
	}

	log.Printf("✅ Coaching %s sweep done: %d sent, %d skipped, %d failed",
		slot, result.Sent, result.Skipped, result.Failed)
	return result, nil
}

// slotCompletion names the sent-log cell that guards the one-time prompt.
const slotCompletion = "completion"

// ensureCompletionPrompt delivers the completion prompt and records the
// pending-confirmation entry, each step skipped once already done. Safe to
// call on every sweep of a finished recipient: once the recipient replies,
// either the anchor resets (Yes) or continue_program drops (No, Stop,
// timeout) and the sweep stops seeing them.
func (s *SweepService) ensureCompletionPrompt(address string, now time.Time) {
	delivered, err := s.Log.AlreadySent(model.CampaignCoaching, address, cadence.CoachingDays, slotCompletion)
	if err != nil {
		log.Printf("⚠️ Sent-log lookup failed for %s: %v", address, err)
		return
	}
	if !delivered {
		if err := s.deliver(model.CampaignCoaching, address, cadence.CoachingDays, slotCompletion, content.CompletionPrompt); err != nil {
			log.Printf("⚠️ Failed to send completion prompt to %s: %v", address, err)
			return
		}
		log.Printf("✅ Completion prompt sent to %s", address)
	}

	entry, err := s.Pending.Get(address)
	if err != nil {
		log.Printf("⚠️ Pending lookup failed for %s: %v", address, err)
		return
	}
	if entry == nil {
		if err := s.Pending.Upsert(address, now); err != nil {
			log.Printf("⚠️ Failed to record pending confirmation for %s: %v", address, err)
		}
	}
}

// RunNewsletterSweep delivers the monthly newsletter to every recipient whose
// anniversary (or day-after-enrollment) falls today.
func (s *SweepService) RunNewsletterSweep() (*SweepResult, error) {
	now := s.now()
	log.Printf("📰 Running newsletter sweep")

	items, err := s.Content.ListActive(model.CampaignNewsletter)
	if err != nil {
		// Store trouble falls back to the built-in table rather than going dark.
		log.Printf("⚠️ Failed to load newsletter templates, using fallback: %v", err)
		items = nil
	}
	table := content.NewsletterTable(items)

	recipients, err := s.Recipients.ListSendable(model.CampaignNewsletter)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Campaign: model.CampaignNewsletter}
	for i := range recipients {
		r := &recipients[i]

		order := cadence.NewsletterOrderNumber(r.EnrollmentAnchor, now, newsletterLoc)
		if order == 0 {
			log.Printf("⏭️ TooEarly: %s enrolled today, first newsletter goes out tomorrow", r.Address)
			result.Skipped++
			continue
		}
		if !cadence.ShouldSendNewsletterToday(r.EnrollmentAnchor, now, newsletterLoc) {
			result.Skipped++
			continue
		}

		delivered, err := s.Log.AlreadySent(model.CampaignNewsletter, r.Address, order, "")
		if err != nil {
			log.Printf("⚠️ Sent-log lookup failed for %s: %v", r.Address, err)
			result.Failed++
			continue
		}
		if delivered {
			log.Printf("⏭️ AlreadyComplete: newsletter #%d already delivered to %s", order, r.Address)
			result.Skipped++
			continue
		}

		link, ok := table[order]
		if !ok {
			log.Printf("⚠️ %v", appErrors.NewContentMissing(model.CampaignNewsletter, order, ""))
			result.Skipped++
			continue
		}

		body := RenderTemplate(content.NewsletterBodyTemplate, map[string]string{
			"first_name":    r.FirstName,
			"order_number":  strconv.Itoa(order),
			"template_link": link,
		})
		if err := s.deliver(model.CampaignNewsletter, r.Address, order, "", body); err != nil {
			log.Printf("⚠️ DeliveryFailure: newsletter #%d to %s: %v", order, r.Address, err)
			result.Failed++
		} else {
			log.Printf("✅ Newsletter #%d sent to %s", order, r.Address)
			result.Sent++
		}
		s.pause()
	}

	log.Printf("✅ Newsletter sweep done: %d sent, %d skipped, %d failed",
		result.Sent, result.Skipped, result.Failed)
	return result, nil
}

// deliver sends one message and records the attempt on the message log.
func (s *SweepService) deliver(campaign, address string, index int, slot, body string) error {
	sid, err := s.Sender.Send(address, body)

	entry := &model.MessageLog{
		Campaign:     campaign,
		Address:      address,
		CadenceIndex: index,
		Slot:         slot,
		Status:       "sent",
		Body:         body,
		ProviderSID:  sid,
	}
	if err != nil {
		entry.Status = "failed"
		entry.LastError = err.Error()
	}
	if logErr := s.Log.Record(entry); logErr != nil {
		log.Printf("⚠️ Failed to record delivery for %s: %v", address, logErr)
	}
	return err
}
