package consumer

import (
	"encoding/json"
	"sync"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/kosakata/vocab-services/internal/comm"
)

// Consumer tails the vocab event subjects and keeps running counters for
// the day. It is the analytics side of the review pipeline; losing an
// event only skews a counter, so subscriptions are plain (no JetStream).
type Consumer struct {
	Conn *nats.Conn

	mu       sync.Mutex
	reviews  int
	lapses   int
	sessions int
}

func NewConsumer(nc *nats.Conn) *Consumer {
	return &Consumer{Conn: nc}
}

// Subscribe attaches the consumer to both vocab subjects with a queue
// group so multiple instances share the stream.
func (c *Consumer) Subscribe() ([]*nats.Subscription, error) {
	reviewSub, err := c.Conn.QueueSubscribe(comm.SubjectReviewRecorded, "analytics", c.handleReview)
	if err != nil {
		return nil, err
	}
	sessionSub, err := c.Conn.QueueSubscribe(comm.SubjectSessionCompleted, "analytics", c.handleSession)
	if err != nil {
		reviewSub.Unsubscribe()
		return nil, err
	}
	return []*nats.Subscription{reviewSub, sessionSub}, nil
}

func (c *Consumer) handleReview(msg *nats.Msg) {
	ev := comm.ReviewRecorded{}
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		log.Errorf("Error decoding review event %s", err)
		return
	}

	c.mu.Lock()
	c.reviews++
	if ev.Quality < 3 {
		c.lapses++
	}
	c.mu.Unlock()

	log.Infof("review recorded user=%d word=%d quality=%d next=%s",
		ev.UserID, ev.WordID, ev.Quality, ev.NextReview.Format("2006-01-02"))
}

func (c *Consumer) handleSession(msg *nats.Msg) {
	ev := comm.SessionCompleted{}
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		log.Errorf("Error decoding session event %s", err)
		return
	}

	c.mu.Lock()
	c.sessions++
	c.mu.Unlock()

	log.Infof("session completed user=%d questions=%d correct=%d accuracy=%.1f",
		ev.UserID, ev.TotalQuestions, ev.CorrectAnswers, ev.AccuracyRate)
}

// Snapshot returns the counters accumulated since start.
func (c *Consumer) Snapshot() (reviews, lapses, sessions int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reviews, c.lapses, c.sessions
}
