package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxehh/hfmessages-backend/internal/content"
	"github.com/luxehh/hfmessages-backend/internal/model"
)

func newReplyService(repo *mockRecipientRepo, now time.Time) (*ReplyService, *mockPendingRepo, *mockQueue) {
	pending := newMockPendingRepo()
	q := &mockQueue{}
	svc := &ReplyService{
		Recipients: repo,
		Pending:    pending,
		Queue:      q,
		Now:        fixedNow(now),
	}
	return svc, pending, q
}

func TestCoachingReplyUnknownNumber(t *testing.T) {
	svc, _, _ := newReplyService(newMockRecipientRepo(), time.Now())

	reply, err := svc.HandleCoachingReply("+19990000000", "yes")
	require.NoError(t, err)
	assert.Equal(t, content.NotRecognized, reply)
}

func TestCoachingYesFromInactiveStartsProgram(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, coachingLoc)
	r := coachingRecipient("+15550001", now.AddDate(0, 0, -40))
	r.ContinueProgram = false
	repo := newMockRecipientRepo(r)
	svc, _, q := newReplyService(repo, now)

	reply, err := svc.HandleCoachingReply("+15550001", "YES")
	require.NoError(t, err)
	assert.Empty(t, reply) // onboarding goes out async, no TwiML body

	stored := repo.get(model.CampaignCoaching, "+15550001")
	assert.True(t, stored.Active)
	assert.True(t, stored.ContinueProgram)
	assert.Equal(t, now, stored.EnrollmentAnchor)

	jobs := q.jobs()
	require.Len(t, jobs, 1)
	require.Len(t, jobs[0].Messages, len(content.OnboardingSequence))
	assert.Contains(t, jobs[0].Messages[0], now.In(coachingLoc).Format("01/02/2006"))
	assert.NotContains(t, jobs[0].Messages[0], "{start_date}")
}

func TestCoachingYesWhileActiveIsNoOp(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, coachingLoc)
	anchor := now.AddDate(0, 0, -5)
	repo := newMockRecipientRepo(coachingRecipient("+15550001", anchor))
	svc, _, q := newReplyService(repo, now)

	reply, err := svc.HandleCoachingReply("+15550001", "yes")
	require.NoError(t, err)
	assert.Empty(t, reply)

	stored := repo.get(model.CampaignCoaching, "+15550001")
	assert.Equal(t, anchor, stored.EnrollmentAnchor) // cadence untouched
	assert.Equal(t, 1, stored.Version)
	assert.Empty(t, q.jobs())
}

func TestCoachingYesWithPendingRestartsFromDayOne(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, coachingLoc)
	r := coachingRecipient("+15550001", now.AddDate(0, 0, -31))
	repo := newMockRecipientRepo(r)
	svc, pending, q := newReplyService(repo, now)
	svc.BonusDelayMS = 5000
	require.NoError(t, pending.Upsert("+15550001", now.Add(-2*time.Hour)))

	reply, err := svc.HandleCoachingReply("+15550001", "Yes")
	require.NoError(t, err)
	assert.Equal(t, content.RestartAck, reply)

	stored := repo.get(model.CampaignCoaching, "+15550001")
	assert.True(t, stored.ContinueProgram)
	assert.Equal(t, now, stored.EnrollmentAnchor)

	entry, err := pending.Get("+15550001")
	require.NoError(t, err)
	assert.Nil(t, entry)

	jobs := q.jobs()
	require.Len(t, jobs, 1)
	bonus, _ := content.Coaching(1, model.SlotMorning)
	assert.Equal(t, []string{bonus}, jobs[0].Messages)
	assert.Equal(t, 5000, jobs[0].InitialDelayMS)
}

func TestCoachingNoStopsProgram(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, coachingLoc)
	repo := newMockRecipientRepo(coachingRecipient("+15550001", now.AddDate(0, 0, -5)))
	svc, _, _ := newReplyService(repo, now)

	reply, err := svc.HandleCoachingReply("+15550001", "no")
	require.NoError(t, err)
	assert.Equal(t, content.UnsubscribeAck, reply)
	assert.False(t, repo.get(model.CampaignCoaching, "+15550001").ContinueProgram)
}

func TestCoachingStopClearsPendingEntry(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, coachingLoc)
	repo := newMockRecipientRepo(coachingRecipient("+15550001", now.AddDate(0, 0, -31)))
	svc, pending, _ := newReplyService(repo, now)
	require.NoError(t, pending.Upsert("+15550001", now.Add(-time.Hour)))

	reply, err := svc.HandleCoachingReply("+15550001", "STOP")
	require.NoError(t, err)
	assert.Equal(t, content.UnsubscribeAck, reply)

	entry, err := pending.Get("+15550001")
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.False(t, repo.get(model.CampaignCoaching, "+15550001").ContinueProgram)
}

func TestCoachingStartIsNoOp(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, coachingLoc)
	r := coachingRecipient("+15550001", now.AddDate(0, 0, -5))
	r.ContinueProgram = false
	repo := newMockRecipientRepo(r)
	svc, _, q := newReplyService(repo, now)

	reply, err := svc.HandleCoachingReply("+15550001", "start")
	require.NoError(t, err)
	assert.Empty(t, reply)
	assert.False(t, repo.get(model.CampaignCoaching, "+15550001").ContinueProgram)
	assert.Empty(t, q.jobs())
}

func TestCoachingKeywordReturnsLink(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, coachingLoc)
	repo := newMockRecipientRepo(coachingRecipient("+15550001", now.AddDate(0, 0, -5)))
	svc, _, _ := newReplyService(repo, now)

	reply, err := svc.HandleCoachingReply("+15550001", "Weigh")
	require.NoError(t, err)
	assert.Equal(t, content.KeywordLinks["weigh"], reply)

	// Keywords never mutate state.
	assert.Equal(t, 1, repo.get(model.CampaignCoaching, "+15550001").Version)
}

func TestCoachingUnknownTextReturnsMenu(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, coachingLoc)
	repo := newMockRecipientRepo(coachingRecipient("+15550001", now.AddDate(0, 0, -5)))
	svc, _, _ := newReplyService(repo, now)

	reply, err := svc.HandleCoachingReply("+15550001", "how do I weigh myself?")
	require.NoError(t, err)
	assert.Equal(t, content.KeywordMenu, reply)
}

func TestCoachingReplyRetriesOnceOnConflict(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, coachingLoc)
	repo := newMockRecipientRepo(coachingRecipient("+15550001", now.AddDate(0, 0, -5)))
	repo.conflicts["+15550001"] = 1
	svc, _, _ := newReplyService(repo, now)

	reply, err := svc.HandleCoachingReply("+15550001", "no")
	require.NoError(t, err)
	assert.Equal(t, content.UnsubscribeAck, reply)
	assert.False(t, repo.get(model.CampaignCoaching, "+15550001").ContinueProgram)
}

func TestNewsletterYesRenews(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, newsletterLoc)
	r := newsletterRecipient("+15550009", now.AddDate(-1, 0, -5))
	r.Active = false // auto-disabled after issue 12
	repo := newMockRecipientRepo(r)
	svc, _, _ := newReplyService(repo, now)

	reply, err := svc.HandleNewsletterReply("+15550009", "YES")
	require.NoError(t, err)
	assert.Contains(t, reply, "Sam")
	assert.Contains(t, reply, "renewed")

	stored := repo.get(model.CampaignNewsletter, "+15550009")
	assert.True(t, stored.Active)
	assert.Equal(t, now, stored.EnrollmentAnchor) // cycle restarts
}

func TestNewsletterNoCancels(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, newsletterLoc)
	repo := newMockRecipientRepo(newsletterRecipient("+15550009", now.AddDate(-1, 0, -5)))
	svc, _, _ := newReplyService(repo, now)

	reply, err := svc.HandleNewsletterReply("+15550009", "no")
	require.NoError(t, err)
	assert.Contains(t, reply, "cancelled")
	assert.False(t, repo.get(model.CampaignNewsletter, "+15550009").Active)
}

func TestNewsletterUnknownTextReturnsMenu(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, newsletterLoc)
	repo := newMockRecipientRepo(newsletterRecipient("+15550009", now.AddDate(-1, 0, -5)))
	svc, _, _ := newReplyService(repo, now)

	reply, err := svc.HandleNewsletterReply("+15550009", "maybe later")
	require.NoError(t, err)
	assert.Equal(t, content.RenewCancelMenu, reply)
}

func TestNewsletterReplyUnknownNumber(t *testing.T) {
	svc, _, _ := newReplyService(newMockRecipientRepo(), time.Now())

	reply, err := svc.HandleNewsletterReply("+19990000000", "yes")
	require.NoError(t, err)
	assert.Equal(t, content.NotRecognized, reply)
}
