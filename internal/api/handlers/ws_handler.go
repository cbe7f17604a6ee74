package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/pkg/response"
	"github.com/linskybing/hris-cloud/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// SnapshotInterval re-sends the list even when nothing was signalled.
	SnapshotInterval = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ApplicantSnapshot is one push on the applicant stream.
type ApplicantSnapshot struct {
	ProjectID  string                `json:"project_id,omitempty"`
	Applicants []applicant.Applicant `json:"applicants"`
	SentAt     time.Time             `json:"sent_at"`
}

type StreamHandler struct {
	applicants *application.ApplicantService
	watcher    *application.Watcher
	interval   time.Duration
}

func NewStreamHandler(applicants *application.ApplicantService, watcher *application.Watcher) *StreamHandler {
	return &StreamHandler{applicants: applicants, watcher: watcher, interval: SnapshotInterval}
}

// StreamApplicants godoc
// @Summary Push the applicant list on every change and every 10 seconds
// @Tags applicants
// @Security BearerAuth
// @Param project_id query string false "Project ID; omitted streams all of the caller's applicants"
// @Success 101 "Switching Protocols"
// @Router /ws/applicants [get]
func (h *StreamHandler) StreamApplicants(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	projectID := uuid.Nil
	if c.Query("project_id") != "" {
		projectID, err = utils.ParseUUIDQuery(c, "project_id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project_id"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	signal, cancel := h.watcher.Subscribe(projectID)
	defer cancel()

	// Heartbeat handling
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader to consume control frames and detect close
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx := c.Request.Context()
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	send := func() bool {
		snap := ApplicantSnapshot{SentAt: time.Now().UTC()}
		var list []applicant.Applicant
		if projectID == uuid.Nil {
			list, err = h.applicants.ListAll(uid)
		} else {
			snap.ProjectID = projectID.String()
			list, err = h.applicants.ListApplicants(projectID, "")
		}
		if err != nil {
			log.Printf("[ws] snapshot for %s failed: %v", uid, err)
			return true
		}
		if list == nil {
			list = []applicant.Applicant{}
		}
		snap.Applicants = list

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(snap) == nil
	}

	if !send() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case _, ok := <-signal:
			if !ok || !send() {
				return
			}
		case <-ticker.C:
			if !send() {
				return
			}
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
