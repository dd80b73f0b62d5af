package broker

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/kosakata/vocab-services/internal/comm"
)

// Broker publishes vocab events to NATS for the analytics consumer.
// Publishing is fire-and-forget; a failed publish is logged and never
// blocks or fails the review itself.
type Broker struct {
	Conn *nats.Conn
}

func NewBroker(nc *nats.Conn) *Broker {
	return &Broker{Conn: nc}
}

func (b *Broker) PublishReviewRecorded(ev comm.ReviewRecorded) {
	b.publish(comm.SubjectReviewRecorded, ev)
}

func (b *Broker) PublishSessionCompleted(ev comm.SessionCompleted) {
	b.publish(comm.SubjectSessionCompleted, ev)
}

func (b *Broker) publish(subject string, payload interface{}) {
	if b == nil || b.Conn == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("Error encoding %s event %s", subject, err)
		return
	}
	if err := b.Conn.Publish(subject, data); err != nil {
		log.Errorf("Error publishing %s event %s", subject, err)
	}
}
