package service

import (
	"context"
	"sync"

	"github.com/flightbag/flightbag/internal/identity"
	"github.com/flightbag/flightbag/internal/logger"
)

type syncJob struct {
	syncService SyncService
	identity    identity.Provider
	net         Connectivity
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates the connectivity-triggered sync job. The job is idle
// until Start is called.
func NewSyncJob(syncService SyncService, provider identity.Provider, net Connectivity, log *logger.Logger) SyncJob {
	return &syncJob{
		syncService: syncService,
		identity:    provider,
		net:         net,
		logger:      log,
	}
}

// Start implements [SyncJob]. It stops any previously running job, runs an
// initial sync pass when a user session exists and the device is already
// online, then waits on connectivity transitions: each offline-to-online
// transition triggers one full pass. Going offline triggers nothing;
// in-flight operations fail naturally and their records stay dirty.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		if j.net.Online() {
			j.runPass(jobCtx)
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case online, open := <-j.net.Events():
				if !open {
					return
				}
				if online {
					j.runPass(jobCtx)
				}
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) runPass(ctx context.Context) {
	userID, ok := j.identity.CurrentUserID()
	if !ok {
		j.logger.Debug().Msg("no user session - skipping sync pass")
		return
	}

	if err := j.syncService.SyncAll(ctx, userID); err != nil {
		// Contained here: a failed pass never propagates, the next
		// connectivity transition retries.
		j.logger.Err(err).Msg("sync pass failed")
	}
}
