// Package worker runs the digest pipeline on a schedule.
package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"finance-digest/internal/pipeline"
)

// WorkerService manages the scheduled digest runs for the application
type WorkerService struct {
	pipeline *pipeline.Pipeline
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	running  bool
	lastRun  *pipeline.RunContext
	mu       sync.RWMutex
}

// NewWorkerService creates a worker that runs the pipeline at the given interval.
func NewWorkerService(p *pipeline.Pipeline, interval time.Duration) *WorkerService {
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerService{
		pipeline: p,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the background digest worker
func (ws *WorkerService) Start() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.running {
		return nil // Already running
	}

	log.Println("Starting digest worker...")

	ws.wg.Add(1)
	go func() {
		defer ws.wg.Done()
		ws.runScheduler()
	}()

	ws.running = true
	log.Println("Digest worker started successfully")

	return nil
}

// Stop stops the background digest worker
func (ws *WorkerService) Stop() {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if !ws.running {
		return // Not running
	}

	log.Println("Stopping digest worker...")

	ws.cancel()
	ws.wg.Wait()

	ws.running = false
	log.Println("Digest worker stopped")
}

// IsRunning returns whether the worker is currently running
func (ws *WorkerService) IsRunning() bool {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.running
}

// RunNow triggers one immediate pipeline run outside the schedule.
func (ws *WorkerService) RunNow() (*pipeline.RunContext, error) {
	run, err := ws.pipeline.Run(ws.ctx)
	if err != nil {
		return nil, err
	}

	ws.mu.Lock()
	ws.lastRun = run
	ws.mu.Unlock()

	return run, nil
}

// runScheduler runs the pipeline once at startup and then on every tick.
func (ws *WorkerService) runScheduler() {
	log.Printf("Digest scheduler running every %s", ws.interval)

	if _, err := ws.RunNow(); err != nil {
		log.Printf("Initial digest run failed: %v", err)
	}

	ticker := time.NewTicker(ws.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ws.ctx.Done():
			log.Println("Digest scheduler stopped")
			return

		case <-ticker.C:
			if _, err := ws.RunNow(); err != nil {
				log.Printf("Scheduled digest run failed: %v", err)
			}
		}
	}
}

// GetStatus returns the current status of the worker service
func (ws *WorkerService) GetStatus() map[string]interface{} {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	status := map[string]interface{}{
		"running":  ws.running,
		"interval": ws.interval.String(),
	}

	if ws.lastRun != nil {
		status["last_run"] = map[string]interface{}{
			"id":         ws.lastRun.ID.String(),
			"started_at": ws.lastRun.StartedAt,
			"collected":  ws.lastRun.Collected,
			"processed":  ws.lastRun.Processed,
			"skipped":    ws.lastRun.Skipped,
			"failed":     ws.lastRun.Failed,
			"ranked":     ws.lastRun.Ranked,
			"delivered":  ws.lastRun.Delivered,
		}
	}

	return status
}
