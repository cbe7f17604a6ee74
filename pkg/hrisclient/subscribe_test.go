package hrisclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/linskybing/hris-cloud/pkg/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerDeliversUntilUnsubscribe(t *testing.T) {
	var fetches atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		writeJSON(w, http.StatusOK, []Applicant{{ID: "a1", Status: pipeline.StatusProcessing}})
	}))

	got := make(chan []Applicant, 16)
	p := &Poller{Client: c, Interval: 20 * time.Millisecond}
	stop := p.SubscribeToApplicants(context.Background(), "p1", func(list []Applicant, err error) {
		assert.NoError(t, err)
		got <- list
	})

	for i := 0; i < 2; i++ {
		select {
		case list := <-got:
			assert.Len(t, list, 1)
		case <-time.After(2 * time.Second):
			t.Fatal("no poll delivered")
		}
	}

	stop()
	stop()
	time.Sleep(50 * time.Millisecond)
	for len(got) > 0 {
		<-got
	}
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, got, "callback fired after unsubscribe")
}

func TestPollerUnsubscribeWaitsForCallback(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []Applicant{{ID: "a1"}})
	}))

	// calls is written by the callback and read here without atomics; the
	// race detector flags any delivery that overlaps or follows stop
	calls := 0
	first := make(chan struct{})
	p := &Poller{Client: c, Interval: time.Millisecond}
	stop := p.SubscribeToApplicants(context.Background(), "p1", func([]Applicant, error) {
		calls++
		if calls == 1 {
			close(first)
		}
		time.Sleep(time.Millisecond)
	})

	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("no poll delivered")
	}
	time.Sleep(10 * time.Millisecond)
	stop()
	n := calls
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, calls)
}

func TestUnsubscribeDuringConcurrentDeliveries(t *testing.T) {
	sub := newSubscription(context.Background())
	stop := sync.OnceFunc(sub.stop)

	var returned atomic.Bool
	var late atomic.Int32
	entered := make(chan struct{}, 1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				sub.deliver(func() {
					select {
					case entered <- struct{}{}:
					default:
					}
					if returned.Load() {
						late.Add(1)
					}
					time.Sleep(10 * time.Microsecond)
				})
			}
		}()
	}

	<-entered
	var stoppers sync.WaitGroup
	for i := 0; i < 2; i++ {
		stoppers.Add(1)
		go func() {
			defer stoppers.Done()
			stop()
		}()
	}
	stoppers.Wait()
	returned.Store(true)
	wg.Wait()

	assert.Zero(t, late.Load(), "callback ran after unsubscribe returned")
	assert.False(t, sub.live())
}

func TestUnsubscribeFromCallback(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []Applicant{})
	}))

	var calls atomic.Int32
	stopped := make(chan struct{})
	var stop func()
	ready := make(chan struct{})
	p := &Poller{Client: c, Interval: time.Millisecond}
	stop = p.SubscribeToApplicants(context.Background(), "p1", func([]Applicant, error) {
		<-ready
		if calls.Add(1) == 1 {
			go func() {
				stop()
				close(stopped)
			}()
		}
	})
	close(ready)

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("unsubscribe from a callback did not return")
	}
	n := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, calls.Load())
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	var fetches atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		writeJSON(w, http.StatusOK, []Applicant{})
	}))

	ctx, cancel := context.WithCancel(context.Background())
	p := &Poller{Client: c, Interval: 10 * time.Millisecond}
	p.SubscribeToApplicants(ctx, "p1", func([]Applicant, error) {})
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)
	n := fetches.Load()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, n, fetches.Load())
}

func TestSocketSubscriber(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}
		assert.Equal(t, "/ws/applicants", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("project_id"))
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for i := 1; i <= 2; i++ {
			apps := make([]Applicant, i)
			_ = conn.WriteJSON(Snapshot{ProjectID: "p1", Applicants: apps, SentAt: time.Now()})
		}
		// hold the connection until the client leaves
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithTokenSource(StaticToken("tok")))
	require.NoError(t, err)
	s := NewSocketSubscriber(c)

	got := make(chan int, 8)
	stop := s.SubscribeToApplicants(context.Background(), "p1", func(list []Applicant, err error) {
		assert.NoError(t, err)
		got <- len(list)
	})
	defer stop()

	for want := 1; want <= 2; want++ {
		select {
		case n := <-got:
			assert.Equal(t, want, n)
		case <-time.After(2 * time.Second):
			t.Fatal("no snapshot delivered")
		}
	}
}

func TestSocketSubscriberReportsHandshakeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithTokenSource(StaticToken("bad")))
	require.NoError(t, err)
	s := &SocketSubscriber{Client: c, ReconnectDelay: time.Hour}

	errs := make(chan error, 1)
	stop := s.SubscribeToApplicants(context.Background(), "p1", func(_ []Applicant, err error) {
		errs <- err
	})
	defer stop()

	select {
	case err := <-errs:
		assert.True(t, IsStatus(err, http.StatusUnauthorized))
		assert.Equal(t, "Unauthorized", err.Error())
	case <-time.After(2 * time.Second):
		t.Fatal("handshake error not reported")
	}
}

func TestStreamURL(t *testing.T) {
	c, err := New("https://api.example.com/v1")
	require.NoError(t, err)
	s := NewSocketSubscriber(c)
	assert.Equal(t, "wss://api.example.com/v1/ws/applicants?project_id=p1", s.streamURL("p1"))
}

func TestBoardWatch(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []Applicant{{ID: "a1", Status: pipeline.StatusHired}})
	}))
	b := NewBoard(c, "p1")
	stop := b.Watch(context.Background(), &Poller{Client: c, Interval: time.Hour}, nil)
	defer stop()

	require.Eventually(t, func() bool { return len(b.Hired()) == 1 }, 2*time.Second, 10*time.Millisecond)
}
