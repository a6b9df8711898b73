package main

import (
	"errors"
	"sync"
	"testing"

	"github.com/streadway/amqp"

	"github.com/luxehh/hfmessages-backend/internal/queue"
	"github.com/luxehh/hfmessages-backend/internal/service"
)

func TestWorkerProcessDeliversPartsInOrder(t *testing.T) {
	var mu sync.Mutex
	var got []string

	worker := service.NewWorker(nil, func(to, body string) error {
		mu.Lock()
		got = append(got, body)
		mu.Unlock()
		return nil
	})

	err := worker.Process(queue.BurstJob{
		To:       "+15550001",
		Messages: []string{"one", "two", "three"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 sends, got %d", len(got))
	}
	for i, want := range []string{"one", "two", "three"} {
		if got[i] != want {
			t.Errorf("part %d: expected %q, got %q", i, want, got[i])
		}
	}
}

func TestWorkerProcessAbortsBurstOnFailure(t *testing.T) {
	sent := 0
	worker := service.NewWorker(nil, func(to, body string) error {
		sent++
		if body == "two" {
			return errors.New("send failed")
		}
		return nil
	})

	err := worker.Process(queue.BurstJob{
		To:       "+15550001",
		Messages: []string{"one", "two", "three"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if sent != 2 {
		t.Errorf("expected burst to stop after the failed part, got %d sends", sent)
	}
}

func TestWorkerStartDrainsChannel(t *testing.T) {
	jobChan := make(chan queue.BurstJob, 1)
	jobChan <- queue.BurstJob{To: "+15550001", Messages: []string{"hello"}}

	var wg sync.WaitGroup
	wg.Add(1)

	worker := service.NewWorker(jobChan, func(to, body string) error {
		wg.Done()
		return nil
	})
	go worker.Start()

	wg.Wait()
	close(jobChan)
}

func TestRetryCountReadsBrokerHeaderTypes(t *testing.T) {
	if got := retryCount(amqp.Table{}); got != 0 {
		t.Errorf("missing header: expected 0, got %d", got)
	}
	if got := retryCount(amqp.Table{"x-retry-count": int32(2)}); got != 2 {
		t.Errorf("int32 header: expected 2, got %d", got)
	}
	if got := retryCount(amqp.Table{"x-retry-count": int64(3)}); got != 3 {
		t.Errorf("int64 header: expected 3, got %d", got)
	}
}
