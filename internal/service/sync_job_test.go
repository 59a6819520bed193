package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbag/flightbag/internal/logger"
)

type stubSyncService struct {
	calls chan string
	err   error
}

func newStubSyncService() *stubSyncService {
	return &stubSyncService{calls: make(chan string, 8)}
}

func (s *stubSyncService) SyncAll(_ context.Context, userID string) error {
	s.calls <- userID
	return s.err
}

type stubIdentity struct {
	userID string
}

func (s *stubIdentity) CurrentUserID() (string, bool) {
	return s.userID, s.userID != ""
}

func waitForPass(t *testing.T, calls <-chan string) string {
	t.Helper()
	select {
	case userID := <-calls:
		return userID
	case <-time.After(2 * time.Second):
		t.Fatal("expected a sync pass, none ran")
		return ""
	}
}

func assertNoPass(t *testing.T, calls <-chan string) {
	t.Helper()
	select {
	case userID := <-calls:
		t.Fatalf("unexpected sync pass for user %q", userID)
	case <-time.After(100 * time.Millisecond):
	}
}

func newTestSyncJob(syncSvc SyncService, userID string, net Connectivity) *syncJob {
	return &syncJob{
		syncService: syncSvc,
		identity:    &stubIdentity{userID: userID},
		net:         net,
		logger:      logger.Nop(),
	}
}

func TestSyncJob_InitialPassWhenAlreadyOnline(t *testing.T) {
	syncSvc := newStubSyncService()
	net := newStubConnectivity(true)

	j := newTestSyncJob(syncSvc, "user-1", net)
	j.Start(context.Background())
	defer j.Stop()

	assert.Equal(t, "user-1", waitForPass(t, syncSvc.calls))
}

func TestSyncJob_NoInitialPassWhenOffline(t *testing.T) {
	syncSvc := newStubSyncService()
	net := newStubConnectivity(false)

	j := newTestSyncJob(syncSvc, "user-1", net)
	j.Start(context.Background())
	defer j.Stop()

	assertNoPass(t, syncSvc.calls)
}

func TestSyncJob_PassOnReconnect(t *testing.T) {
	syncSvc := newStubSyncService()
	net := newStubConnectivity(false)

	j := newTestSyncJob(syncSvc, "user-1", net)
	j.Start(context.Background())
	defer j.Stop()

	net.events <- true
	assert.Equal(t, "user-1", waitForPass(t, syncSvc.calls))
}

// Going offline is not a trigger: in-flight work fails on its own and the
// records stay dirty for the next reconnect.
func TestSyncJob_NoPassOnDisconnect(t *testing.T) {
	syncSvc := newStubSyncService()
	net := newStubConnectivity(false)

	j := newTestSyncJob(syncSvc, "user-1", net)
	j.Start(context.Background())
	defer j.Stop()

	net.events <- false
	assertNoPass(t, syncSvc.calls)
}

func TestSyncJob_SkipsPassWithoutSession(t *testing.T) {
	syncSvc := newStubSyncService()
	net := newStubConnectivity(true)

	j := newTestSyncJob(syncSvc, "", net)
	j.Start(context.Background())
	defer j.Stop()

	assertNoPass(t, syncSvc.calls)
}

func TestSyncJob_FailedPassContained(t *testing.T) {
	syncSvc := newStubSyncService()
	syncSvc.err = errors.New("backend unreachable")
	net := newStubConnectivity(false)

	j := newTestSyncJob(syncSvc, "user-1", net)
	j.Start(context.Background())
	defer j.Stop()

	net.events <- true
	waitForPass(t, syncSvc.calls)

	// The job survives the failure and reacts to the next transition.
	net.events <- true
	waitForPass(t, syncSvc.calls)
}

func TestSyncJob_StopIsIdempotent(t *testing.T) {
	syncSvc := newStubSyncService()
	net := newStubConnectivity(true)

	j := newTestSyncJob(syncSvc, "user-1", net)

	// Stopping a never-started job must not block or panic.
	j.Stop()

	j.Start(context.Background())
	waitForPass(t, syncSvc.calls)

	j.Stop()
	j.Stop()
	require.NotPanics(t, func() { j.Stop() })
}
