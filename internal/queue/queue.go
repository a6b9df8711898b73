package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"github.com/luxehh/hfmessages-backend/internal/provider"
)

// TopicBurstSends carries multi-message bursts (onboarding sequences, bonus
// day-1 sends) dispatched asynchronously after a webhook has already been
// acknowledged.
const TopicBurstSends = "burst_sends"

// BurstJob is one spaced multi-message delivery to a single recipient.
type BurstJob struct {
	To             string   `json:"to"`
	Messages       []string `json:"messages"`
	DelayMS        int      `json:"delay_ms"`         // spacing between parts
	InitialDelayMS int      `json:"initial_delay_ms"` // wait before the first part
}

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process queue with bounded retry, used when no
// AMQP_URL is configured. Jobs are lost on restart; the durable lifecycle
// state (recipients, pending confirmations) lives in Postgres, so only an
// in-flight burst can be dropped.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %v\n", job.RetryCount, job.MaxRetries, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// AMQPQueue publishes jobs to a durable RabbitMQ queue; the cmd/worker binary
// consumes them. Subscribe is not supported on the publisher side.
type AMQPQueue struct {
	Channel *amqp.Channel
}

func NewAMQPQueue(amqpURL string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := ch.QueueDeclare(TopicBurstSends, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &AMQPQueue{Channel: ch}, nil
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.Channel.Publish("", topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	return fmt.Errorf("amqp queue %s is consumed by the worker binary", topic)
}

// StartBurstSubscriber wires the in-process burst consumer: each job's parts
// go out in order, spaced by the job's delay. A failed part fails the whole
// job so the queue's retry replays it.
func StartBurstSubscriber(q Queue, sender provider.Sender) {
	go func() {
		err := q.Subscribe(TopicBurstSends, func(payload any) error {
			job, ok := payload.(BurstJob)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected BurstJob")
				return nil // no retry
			}

			if job.InitialDelayMS > 0 {
				time.Sleep(time.Duration(job.InitialDelayMS) * time.Millisecond)
			}
			for i, body := range job.Messages {
				if _, err := sender.Send(job.To, body); err != nil {
					log.Printf("⚠️ Failed to send burst part %d/%d to %s: %v",
						i+1, len(job.Messages), job.To, err)
					return err // triggers retry in queue
				}
				log.Printf("✅ Burst part %d/%d sent to %s", i+1, len(job.Messages), job.To)
				if i < len(job.Messages)-1 {
					time.Sleep(time.Duration(job.DelayMS) * time.Millisecond)
				}
			}
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for burst_sends:", err)
		}
	}()
}
