// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/luxehh/hfmessages-backend/internal/controller"
	"github.com/luxehh/hfmessages-backend/internal/db"
	"github.com/luxehh/hfmessages-backend/internal/handler"
	"github.com/luxehh/hfmessages-backend/internal/model"
	"github.com/luxehh/hfmessages-backend/internal/provider"
	"github.com/luxehh/hfmessages-backend/internal/queue"
	"github.com/luxehh/hfmessages-backend/internal/repository"
	"github.com/luxehh/hfmessages-backend/internal/scheduler"
	"github.com/luxehh/hfmessages-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	recipientRepo := &repository.RecipientRepository{DB: db.DB}
	contentRepo := &repository.ContentRepository{DB: db.DB}
	pendingRepo := &repository.PendingRepository{DB: db.DB}
	logRepo := &repository.MessageLogRepository{DB: db.DB}

	var sender provider.Sender
	if os.Getenv("TWILIO_SID") != "" {
		sender = provider.NewTwilioSenderFromEnv()
		log.Println("📞 Using Twilio sender")
	} else {
		sender = provider.MockSender{}
		log.Println("⚠️ TWILIO_SID not set, using mock sender")
	}

	// Burst queue: durable amqp when configured, in-process otherwise.
	var q queue.Queue
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		amqpQueue, err := queue.NewAMQPQueue(amqpURL)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ:", err)
		}
		q = amqpQueue
		log.Println("🐇 Burst sends go through RabbitMQ")
	} else {
		memQueue := queue.NewInMemoryQueue()
		queue.StartBurstSubscriber(memQueue, sender)
		q = memQueue
	}

	sendDelay := time.Duration(envInt("SEND_DELAY_MS", 500)) * time.Millisecond

	sweepService := &service.SweepService{
		Recipients: recipientRepo,
		Content:    contentRepo,
		Pending:    pendingRepo,
		Log:        logRepo,
		Sender:     sender,
		SendDelay:  sendDelay,
	}
	replyService := &service.ReplyService{
		Recipients:   recipientRepo,
		Pending:      pendingRepo,
		Queue:        q,
		BurstDelayMS: envInt("BURST_DELAY_MS", 3000),
		BonusDelayMS: envInt("BONUS_DELAY_MS", 5000),
	}
	lifecycleService := &service.LifecycleService{
		Recipients: recipientRepo,
		Pending:    pendingRepo,
		Sender:     sender,
		SendDelay:  sendDelay,
	}
	enrollmentService := &service.EnrollmentService{
		Recipients:   recipientRepo,
		Queue:        q,
		BurstDelayMS: envInt("BURST_DELAY_MS", 3000),
	}

	webhookController := &controller.WebhookController{ReplyService: replyService}
	recipientController := &controller.RecipientController{EnrollmentService: enrollmentService}
	statsHandler := &handler.StatsHandler{Log: logRepo}

	// Scheduled triggers. The coaching program runs on US Central wall-clock
	// time; the newsletter campaign on Indian wall-clock time. On completion
	// days the auto-completion sweep fires before the send sweep.
	sched := scheduler.New()
	sched.AddDaily(scheduler.Trigger{
		Campaign: model.CampaignCoaching, Slot: model.SlotMorning,
		Timezone: service.CoachingTimezone, Hour: 9, Minute: 0,
		Job: func() { sweepService.RunCoachingSweep(model.SlotMorning) },
	})
	sched.AddDaily(scheduler.Trigger{
		Campaign: model.CampaignCoaching, Slot: model.SlotEvening,
		Timezone: service.CoachingTimezone, Hour: 17, Minute: 0,
		Job: func() { sweepService.RunCoachingSweep(model.SlotEvening) },
	})
	sched.AddDaily(scheduler.Trigger{
		Campaign: model.CampaignNewsletter, Slot: "autocomplete",
		Timezone: service.NewsletterTimezone, Hour: 20, Minute: 15,
		Job: func() { lifecycleService.RunAutoCompletionSweep() },
	})
	sched.AddDaily(scheduler.Trigger{
		Campaign: model.CampaignNewsletter, Slot: "send",
		Timezone: service.NewsletterTimezone, Hour: 20, Minute: 30,
		Job: func() { sweepService.RunNewsletterSweep() },
	})
	sched.AddDaily(scheduler.Trigger{
		Campaign: model.CampaignNewsletter, Slot: "resubscribe",
		Timezone: service.NewsletterTimezone, Hour: 20, Minute: 45,
		Job: func() { lifecycleService.RunResubscriptionSweep() },
	})
	sched.AddInterval("confirmation-timeout", 4*time.Hour, func() {
		lifecycleService.RunTimeoutSweep()
	})
	sched.Start()
	defer sched.Stop()

	r := chi.NewRouter()

	// Webhook routes (Twilio inbound)
	r.Post("/webhooks/coaching/reply", webhookController.CoachingReply)
	r.Post("/webhooks/newsletter/reply", webhookController.NewsletterReply)

	// Enrollment routes
	r.Post("/recipients/coaching", recipientController.EnrollCoaching)
	r.Post("/recipients/newsletter", recipientController.EnrollNewsletter)

	// Stats
	r.Get("/campaigns/{campaign}/stats", statsHandler.GetCampaignStats)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("⚠️ Invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}
