package service

import (
	"fmt"
	"sync"
	"time"

	appErrors "github.com/luxehh/hfmessages-backend/internal/errors"
	"github.com/luxehh/hfmessages-backend/internal/model"
	"github.com/luxehh/hfmessages-backend/internal/queue"
	"github.com/luxehh/hfmessages-backend/internal/repository"
)

// --- Mock Repositories ---

type mockRecipientRepo struct {
	mu         sync.Mutex
	recipients map[string]*model.Recipient // keyed by campaign|address
	conflicts  map[string]int              // injected stale-version failures per address
	nextID     int
}

func newMockRecipientRepo(recipients ...*model.Recipient) *mockRecipientRepo {
	repo := &mockRecipientRepo{
		recipients: map[string]*model.Recipient{},
		conflicts:  map[string]int{},
	}
	for _, r := range recipients {
		repo.nextID++
		r.ID = repo.nextID
		if r.Version == 0 {
			r.Version = 1
		}
		clone := *r
		repo.recipients[r.Campaign+"|"+r.Address] = &clone
	}
	return repo
}

func (m *mockRecipientRepo) get(campaign, address string) *model.Recipient {
	return m.recipients[campaign+"|"+address]
}

func (m *mockRecipientRepo) list(campaign string, keep func(*model.Recipient) bool) ([]model.Recipient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Recipient{}
	for _, r := range m.recipients {
		if r.Campaign == campaign && keep(r) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRecipientRepo) ListSendable(campaign string) ([]model.Recipient, error) {
	return m.list(campaign, func(r *model.Recipient) bool {
		if !r.Active {
			return false
		}
		return campaign != model.CampaignCoaching || r.ContinueProgram
	})
}

func (m *mockRecipientRepo) ListActive(campaign string) ([]model.Recipient, error) {
	return m.list(campaign, func(r *model.Recipient) bool { return r.Active })
}

func (m *mockRecipientRepo) ListAll(campaign string) ([]model.Recipient, error) {
	return m.list(campaign, func(r *model.Recipient) bool { return true })
}

func (m *mockRecipientRepo) GetByAddress(campaign, address string) (*model.Recipient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.get(campaign, address)
	if r == nil {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (m *mockRecipientRepo) Create(r *model.Recipient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	r.Version = 1
	clone := *r
	m.recipients[r.Campaign+"|"+r.Address] = &clone
	return nil
}

func (m *mockRecipientRepo) UpdateState(r *model.Recipient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := m.get(r.Campaign, r.Address)
	if stored == nil {
		return appErrors.NewRecipientNotFound(r.Address)
	}
	if m.conflicts[r.Address] > 0 {
		// Simulate a concurrent writer landing first.
		m.conflicts[r.Address]--
		stored.Version++
		return appErrors.NewStateConflict(r.Address, r.Version)
	}
	if stored.Version != r.Version {
		return appErrors.NewStateConflict(r.Address, r.Version)
	}
	clone := *r
	clone.Version++
	m.recipients[r.Campaign+"|"+r.Address] = &clone
	r.Version++
	return nil
}

var _ repository.RecipientRepositoryInterface = (*mockRecipientRepo)(nil)

type mockPendingRepo struct {
	mu      sync.Mutex
	entries map[string]model.PendingConfirmation
}

func newMockPendingRepo() *mockPendingRepo {
	return &mockPendingRepo{entries: map[string]model.PendingConfirmation{}}
}

func (m *mockPendingRepo) Upsert(address string, sentAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[address] = model.PendingConfirmation{Address: address, SentAt: sentAt}
	return nil
}

func (m *mockPendingRepo) Get(address string) (*model.PendingConfirmation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.entries[address]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *mockPendingRepo) Delete(address string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, address)
	return nil
}

func (m *mockPendingRepo) ListOlderThan(cutoff time.Time) ([]model.PendingConfirmation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.PendingConfirmation{}
	for _, p := range m.entries {
		if !p.SentAt.After(cutoff) {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.PendingRepositoryInterface = (*mockPendingRepo)(nil)

type mockLogRepo struct {
	mu      sync.Mutex
	entries map[string]*model.MessageLog
	nextID  int
}

func newMockLogRepo() *mockLogRepo {
	return &mockLogRepo{entries: map[string]*model.MessageLog{}}
}

func logKey(campaign, address string, index int, slot string) string {
	return fmt.Sprintf("%s|%s|%d|%s", campaign, address, index, slot)
}

func (m *mockLogRepo) AlreadySent(campaign, address string, cadenceIndex int, slot string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[logKey(campaign, address, cadenceIndex, slot)]
	return ok && entry.Status == "sent", nil
}

func (m *mockLogRepo) Record(entry *model.MessageLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := logKey(entry.Campaign, entry.Address, entry.CadenceIndex, entry.Slot)
	if existing, ok := m.entries[key]; ok {
		entry.ID = existing.ID
	} else {
		m.nextID++
		entry.ID = m.nextID
	}
	clone := *entry
	m.entries[key] = &clone
	return nil
}

func (m *mockLogRepo) GetByID(id int) (*model.MessageLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range m.entries {
		if entry.ID == id {
			clone := *entry
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *mockLogRepo) Stats(campaign string) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := map[string]int{"sent": 0, "failed": 0}
	for _, entry := range m.entries {
		if entry.Campaign == campaign {
			stats[entry.Status]++
		}
	}
	return stats, nil
}

var _ repository.MessageLogRepositoryInterface = (*mockLogRepo)(nil)

type mockContentRepo struct {
	items []model.ContentItem
	err   error
}

func (m *mockContentRepo) ListActive(campaign string) ([]model.ContentItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

var _ repository.ContentRepositoryInterface = (*mockContentRepo)(nil)

// --- Mock Sender ---

type sentMessage struct {
	To   string
	Body string
}

type mockSender struct {
	mu        sync.Mutex
	sent      []sentMessage
	failTo    map[string]bool
	failAfter int // when > 0, sends beyond this many successes fail
}

func newMockSender() *mockSender {
	return &mockSender{failTo: map[string]bool{}}
}

func (m *mockSender) Send(to, body string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTo[to] {
		return "", fmt.Errorf("provider rejected %s", to)
	}
	if m.failAfter > 0 && len(m.sent) >= m.failAfter {
		return "", fmt.Errorf("provider unavailable")
	}
	m.sent = append(m.sent, sentMessage{To: to, Body: body})
	return fmt.Sprintf("SM%04d", len(m.sent)), nil
}

func (m *mockSender) sentTo(to string) []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []sentMessage{}
	for _, s := range m.sent {
		if s.To == to {
			out = append(out, s)
		}
	}
	return out
}

// --- Mock Queue ---

type mockQueue struct {
	mu        sync.Mutex
	published []queue.BurstJob
}

func (m *mockQueue) Publish(topic string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := payload.(queue.BurstJob)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}
	m.published = append(m.published, job)
	return nil
}

func (m *mockQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}

func (m *mockQueue) jobs() []queue.BurstJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]queue.BurstJob{}, m.published...)
}

var _ queue.Queue = (*mockQueue)(nil)
