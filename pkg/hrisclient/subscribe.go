package hrisclient

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultPollInterval matches the refresh period of the staff dashboard.
const DefaultPollInterval = 10 * time.Second

// ApplicantsFunc receives each fresh list, or the error of a failed fetch.
type ApplicantsFunc func(applicants []Applicant, err error)

// Subscriber delivers a project's applicants whenever they may have
// changed. After unsubscribe returns, or ctx is done, cb is not called
// again. unsubscribe waits for a callback that is already running, so cb
// must not call it directly; use go unsubscribe() from inside cb.
type Subscriber interface {
	SubscribeToApplicants(ctx context.Context, projectID string, cb ApplicantsFunc) (unsubscribe func())
}

// ticketFunc is an ApplicantsFunc that also receives the ticket taken
// before the list was fetched.
type ticketFunc func(ticket uint64, applicants []Applicant, err error)

// ticketedSubscriber lets a Board number each fetch before it starts.
type ticketedSubscriber interface {
	subscribe(ctx context.Context, projectID string, begin func() uint64, cb ticketFunc) (unsubscribe func())
}

func noTicket() uint64 { return 0 }

func untracked(cb ApplicantsFunc) ticketFunc {
	return func(_ uint64, list []Applicant, err error) { cb(list, err) }
}

// subscription drops deliveries once stopped. mu is held for reading
// around each callback and for writing by stop.
type subscription struct {
	ctx     context.Context
	cancel  context.CancelFunc
	stopped atomic.Bool
	mu      sync.RWMutex
}

func newSubscription(ctx context.Context) *subscription {
	s := &subscription{}
	s.ctx, s.cancel = context.WithCancel(ctx)
	return s
}

func (s *subscription) live() bool {
	return !s.stopped.Load() && s.ctx.Err() == nil
}

func (s *subscription) deliver(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.live() {
		fn()
	}
}

// stop returns once no callback is running.
func (s *subscription) stop() {
	s.cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped.Store(true)
}

// Poller refetches the list on a fixed interval.
type Poller struct {
	Client   *Client
	Interval time.Duration
}

func NewPoller(c *Client) *Poller {
	return &Poller{Client: c, Interval: DefaultPollInterval}
}

func (p *Poller) SubscribeToApplicants(ctx context.Context, projectID string, cb ApplicantsFunc) func() {
	return p.subscribe(ctx, projectID, noTicket, untracked(cb))
}

func (p *Poller) subscribe(ctx context.Context, projectID string, begin func() uint64, cb ticketFunc) func() {
	sub := newSubscription(ctx)
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			ticket := begin()
			list, err := p.Client.ListApplicants(sub.ctx, projectID, "")
			sub.deliver(func() { cb(ticket, list, err) })
			select {
			case <-sub.ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return sync.OnceFunc(sub.stop)
}

// SocketSubscriber receives pushed snapshots from /ws/applicants and
// redials after ReconnectDelay when the connection drops.
type SocketSubscriber struct {
	Client         *Client
	Dialer         *websocket.Dialer
	ReconnectDelay time.Duration
}

func NewSocketSubscriber(c *Client) *SocketSubscriber {
	return &SocketSubscriber{Client: c, Dialer: websocket.DefaultDialer, ReconnectDelay: 5 * time.Second}
}

func (s *SocketSubscriber) streamURL(projectID string) string {
	u := s.Client.BaseURL()
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path += "/ws/applicants"
	if projectID != "" {
		u.RawQuery = url.Values{"project_id": {projectID}}.Encode()
	}
	return u.String()
}

func (s *SocketSubscriber) SubscribeToApplicants(ctx context.Context, projectID string, cb ApplicantsFunc) func() {
	return s.subscribe(ctx, projectID, noTicket, untracked(cb))
}

// subscribe numbers each snapshot when it is read off the socket.
func (s *SocketSubscriber) subscribe(ctx context.Context, projectID string, begin func() uint64, cb ticketFunc) func() {
	sub := newSubscription(ctx)
	delay := s.ReconnectDelay
	if delay <= 0 {
		delay = 5 * time.Second
	}

	go func() {
		for sub.live() {
			if err := s.stream(sub, projectID, begin, cb); err != nil {
				sub.deliver(func() { cb(0, nil, err) })
			}
			select {
			case <-sub.ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}()
	return sync.OnceFunc(sub.stop)
}

// stream holds one connection open until it fails or the subscription ends.
func (s *SocketSubscriber) stream(sub *subscription, projectID string, begin func() uint64, cb ticketFunc) error {
	tok, err := s.Client.token(sub.ctx)
	if err != nil {
		return err
	}
	dialer := s.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+tok)

	conn, resp, err := dialer.DialContext(sub.ctx, s.streamURL(projectID), header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			return decodeError(resp)
		}
		return err
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sub.ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			conn.Close()
		case <-done:
		}
	}()

	for {
		var snap Snapshot
		if err := conn.ReadJSON(&snap); err != nil {
			if !sub.live() {
				return nil
			}
			return err
		}
		ticket := begin()
		sub.deliver(func() { cb(ticket, snap.Applicants, nil) })
	}
}
