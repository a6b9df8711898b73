package service

import (
	"log"
	"time"

	"github.com/luxehh/hfmessages-backend/internal/queue"
)

// Worker drains burst jobs from a channel and delivers each part in order,
// spaced by the job's delay. cmd/worker feeds it from the amqp queue.
type Worker struct {
	JobChan  <-chan queue.BurstJob
	SendFunc func(to, body string) error
}

// Constructor
func NewWorker(jobChan <-chan queue.BurstJob, sendFunc func(to, body string) error) *Worker {
	return &Worker{
		JobChan:  jobChan,
		SendFunc: sendFunc,
	}
}

// Start begins processing jobs. Returns when the channel closes.
func (w *Worker) Start() {
	for job := range w.JobChan {
		if err := w.Process(job); err != nil {
			log.Println("Failed to deliver burst:", err)
		}
	}
}

// Process delivers one burst job. A failed part aborts the rest of the burst
// so the caller can decide whether to requeue.
func (w *Worker) Process(job queue.BurstJob) error {
	if job.InitialDelayMS > 0 {
		time.Sleep(time.Duration(job.InitialDelayMS) * time.Millisecond)
	}
	for i, body := range job.Messages {
		if err := w.SendFunc(job.To, body); err != nil {
			return err
		}
		if i < len(job.Messages)-1 {
			time.Sleep(time.Duration(job.DelayMS) * time.Millisecond)
		}
	}
	return nil
}
