// internal/controller/recipient_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "time"

    "github.com/luxehh/hfmessages-backend/internal/service"
)

// RecipientController exposes the enrollment operations. These live in the
// engine (rather than the admin collaborator) because enrolling has SMS side
// effects: the welcome/terms burst and the subscription confirmation.
type RecipientController struct {
    EnrollmentService *service.EnrollmentService
}

func (c *RecipientController) EnrollCoaching(w http.ResponseWriter, r *http.Request) {
    var body struct {
        FirstName string  `json:"first_name"`
        LastName  string  `json:"last_name"`
        Address   string  `json:"address"`
        StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if body.Address == "" {
        http.Error(w, "address is required", http.StatusBadRequest)
        return
    }

    var startDate *time.Time
    if body.StartDate != nil {
        t, err := time.Parse("2006-01-02", *body.StartDate)
        if err != nil {
            http.Error(w, "invalid start_date, expected YYYY-MM-DD", http.StatusBadRequest)
            return
        }
        startDate = &t
    }

    recipient, created, err := c.EnrollmentService.EnrollCoaching(body.FirstName, body.LastName, body.Address, startDate)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }
    if !created {
        w.Header().Set("Content-Type", "application/json")
        json.NewEncoder(w).Encode(map[string]interface{}{
            "message":   "Recipient with this contact number already exists.",
            "recipient": recipient,
        })
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(recipient)
}

func (c *RecipientController) EnrollNewsletter(w http.ResponseWriter, r *http.Request) {
    var body struct {
        FirstName string `json:"first_name"`
        LastName  string `json:"last_name"`
        Address   string `json:"address"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if body.Address == "" {
        http.Error(w, "address is required", http.StatusBadRequest)
        return
    }

    recipient, created, err := c.EnrollmentService.EnrollNewsletter(body.FirstName, body.LastName, body.Address)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }
    if !created {
        w.Header().Set("Content-Type", "application/json")
        json.NewEncoder(w).Encode(map[string]interface{}{
            "message":   "Subscriber with this phone number already exists.",
            "recipient": recipient,
        })
        return
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(recipient)
}
