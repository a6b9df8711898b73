// internal/errors/errors.go
package appErrors

import "fmt"

// ErrRecipientNotFound is a sentinel error
type ErrRecipientNotFound struct {
    Address string
}

func (e *ErrRecipientNotFound) Error() string {
    return fmt.Sprintf("recipient with address %s not found", e.Address)
}

// Helper constructor
func NewRecipientNotFound(address string) error {
    return &ErrRecipientNotFound{Address: address}
}

// ErrStateConflict signals an optimistic-lock failure: the recipient row
// changed under us and the caller should re-read and retry.
type ErrStateConflict struct {
    Address string
    Version int
}

func (e *ErrStateConflict) Error() string {
    return fmt.Sprintf("concurrent update of recipient %s (stale version %d)", e.Address, e.Version)
}

func NewStateConflict(address string, version int) error {
    return &ErrStateConflict{Address: address, Version: version}
}

// ErrContentMissing means no content is configured for a cadence index.
// Sweeps log it and continue with the next recipient.
type ErrContentMissing struct {
    Campaign string
    Index    int
    Slot     string
}

func (e *ErrContentMissing) Error() string {
    if e.Slot == "" {
        return fmt.Sprintf("no %s content configured for index %d", e.Campaign, e.Index)
    }
    return fmt.Sprintf("no %s content configured for index %d slot %s", e.Campaign, e.Index, e.Slot)
}

func NewContentMissing(campaign string, index int, slot string) error {
    return &ErrContentMissing{Campaign: campaign, Index: index, Slot: slot}
}
