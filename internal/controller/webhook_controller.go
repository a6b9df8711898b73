// internal/controller/webhook_controller.go
package controller

import (
    "encoding/xml"
    "log"
    "net/http"

    "github.com/luxehh/hfmessages-backend/internal/service"
)

// WebhookController receives Twilio inbound-message callbacks. The handlers
// acknowledge immediately with TwiML; any multi-message follow-up is queued
// by the reply service and never blocks the response.
type WebhookController struct {
    ReplyService *service.ReplyService
}

// twiml is the minimal Twilio messaging response document.
type twiml struct {
    XMLName xml.Name `xml:"Response"`
    Message string   `xml:"Message,omitempty"`
}

func writeTwiML(w http.ResponseWriter, message string) {
    out, err := xml.Marshal(twiml{Message: message})
    if err != nil {
        http.Error(w, "failed to render response", http.StatusInternalServerError)
        return
    }
    w.Header().Set("Content-Type", "text/xml")
    w.Write([]byte(xml.Header))
    w.Write(out)
}

// CoachingReply handles replies to the 30-day program number.
func (c *WebhookController) CoachingReply(w http.ResponseWriter, r *http.Request) {
    if err := r.ParseForm(); err != nil {
        http.Error(w, "invalid form body", http.StatusBadRequest)
        return
    }
    from := r.FormValue("From")
    body := r.FormValue("Body")
    log.Printf("📥 Coaching webhook hit: %s", from)

    reply, err := c.ReplyService.HandleCoachingReply(from, body)
    if err != nil {
        log.Println("❌ Failed to handle coaching reply:", err)
        http.Error(w, "failed to process reply", http.StatusInternalServerError)
        return
    }
    writeTwiML(w, reply)
}

// NewsletterReply handles replies to the newsletter number.
func (c *WebhookController) NewsletterReply(w http.ResponseWriter, r *http.Request) {
    if err := r.ParseForm(); err != nil {
        http.Error(w, "invalid form body", http.StatusBadRequest)
        return
    }
    from := r.FormValue("From")
    body := r.FormValue("Body")
    log.Printf("📥 Newsletter webhook hit: %s", from)

    reply, err := c.ReplyService.HandleNewsletterReply(from, body)
    if err != nil {
        log.Println("❌ Failed to handle newsletter reply:", err)
        http.Error(w, "failed to process reply", http.StatusInternalServerError)
        return
    }
    writeTwiML(w, reply)
}
