// internal/handler/stats_handler.go
package handler

import (
    "encoding/json"
    "log"
    "net/http"

    "github.com/go-chi/chi/v5"

    "github.com/luxehh/hfmessages-backend/internal/model"
    "github.com/luxehh/hfmessages-backend/internal/repository"
)

// StatsHandler serves delivery counts from the message log.
type StatsHandler struct {
    Log repository.MessageLogRepositoryInterface
}

func (h *StatsHandler) GetCampaignStats(w http.ResponseWriter, r *http.Request) {
    campaign := chi.URLParam(r, "campaign")
    log.Println("📥 Stats requested for campaign:", campaign)

    if campaign != model.CampaignCoaching && campaign != model.CampaignNewsletter {
        http.Error(w, "unknown campaign", http.StatusNotFound)
        return
    }

    stats, err := h.Log.Stats(campaign)
    if err != nil {
        http.Error(w, "failed to load stats", http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "campaign": campaign,
        "stats":    stats,
    })
}
