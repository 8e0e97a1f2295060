package board

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topi314/activity-board/internal/activitiestest"
	"github.com/topi314/activity-board/server/activities"
)

// gatedAPI holds the first fetch until gate is closed and tracks how many
// registrations run at the same time.
type gatedAPI struct {
	snapshot *activities.Snapshot
	gate     chan struct{}
	started  chan struct{}

	fetches     atomic.Int32
	inflight    atomic.Int32
	maxInflight atomic.Int32
}

func newGatedAPI(snapshot *activities.Snapshot) *gatedAPI {
	return &gatedAPI{
		snapshot: snapshot,
		gate:     make(chan struct{}),
		started:  make(chan struct{}),
	}
}

func (a *gatedAPI) FetchActivities(context.Context) (*activities.Snapshot, error) {
	if a.fetches.Add(1) == 1 {
		close(a.started)
		<-a.gate
	}
	return a.snapshot, nil
}

func (a *gatedAPI) Signup(_ context.Context, activity string, email string) (string, error) {
	a.enter()
	defer a.inflight.Add(-1)
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

func (a *gatedAPI) Unregister(_ context.Context, activity string, email string) (string, error) {
	a.enter()
	defer a.inflight.Add(-1)
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

func (a *gatedAPI) enter() {
	n := a.inflight.Add(1)
	for {
		m := a.maxInflight.Load()
		if n <= m || a.maxInflight.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
}

func TestConcurrentLoadsShareFetch(t *testing.T) {
	const loads = 8

	api := newGatedAPI(activitiestest.ChessClub())
	b := New(testConfig(), api, nil)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		entered atomic.Int32
		pages   = make([]Page, loads)
	)
	for i := range loads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entered.Add(1)
			pages[i] = b.Load(ctx, newSession(fmt.Sprintf("s%d", i), time.Now()))
		}()
	}

	<-api.started
	require.Eventually(t, func() bool {
		return entered.Load() == loads
	}, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(api.gate)
	wg.Wait()

	assert.Equal(t, int32(1), api.fetches.Load())
	for _, page := range pages {
		require.Len(t, page.Cards, 1)
		assert.Equal(t, "Chess Club", page.Cards[0].Name)
	}
}

func TestRefreshAfterSignupDoesNotJoinPendingLoad(t *testing.T) {
	api := newGatedAPI(activitiestest.ChessClub())
	b := New(testConfig(), api, nil)
	ctx := context.Background()

	loaded := make(chan struct{})
	go func() {
		defer close(loaded)
		b.Load(ctx, newSession("loading", time.Now()))
	}()
	<-api.started

	signedUp := make(chan Page, 1)
	go func() {
		signedUp <- b.Signup(ctx, newSession("signing-up", time.Now()), "Chess Club", "b@x.com")
	}()

	select {
	case page := <-signedUp:
		require.NotNil(t, page.Status)
		assert.Equal(t, StatusSuccess, page.Status.Kind)
		assert.Len(t, page.Cards, 1)
		assert.Equal(t, int32(2), api.fetches.Load())
	case <-time.After(time.Second):
		t.Fatal("signup waited for a fetch that started before it")
	}

	close(api.gate)
	<-loaded
}

func TestSessionActionsAreSerialized(t *testing.T) {
	api := newGatedAPI(activitiestest.ChessClub())
	close(api.gate)
	b := New(testConfig(), api, nil)
	ctx := context.Background()

	s := newSession("shared", time.Now())
	b.Load(ctx, s)

	var wg sync.WaitGroup
	for i := range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			email := fmt.Sprintf("user%d@x.com", i)
			if i%2 == 0 {
				b.Signup(ctx, s, "Chess Club", email)
			} else {
				b.Unregister(ctx, s, "Chess Club", email)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), api.maxInflight.Load())
	assert.Equal(t, int32(7), api.fetches.Load())
}

func TestParallelSessionsRegisterIndependently(t *testing.T) {
	api := newGatedAPI(activitiestest.ChessClub())
	close(api.gate)
	b := New(testConfig(), api, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Signup(ctx, newSession(fmt.Sprintf("s%d", i), time.Now()), "Chess Club", fmt.Sprintf("user%d@x.com", i))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(4), api.fetches.Load())
}
