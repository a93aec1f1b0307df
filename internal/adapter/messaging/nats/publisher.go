package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
)

// Publisher pushes motel lifecycle events (motel.created, motel.updated,
// motel.status.updated, motel.deleted, motel.photo.uploaded) as JSON.
type Publisher struct {
	conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn}, nil
}

// Publish is fire-and-forget; a nil Publisher is a no-op so callers never
// fail a request over messaging.
func (p *Publisher) Publish(ctx context.Context, subject string, data interface{}) error {
	if p == nil || p.conn == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return p.conn.Publish(subject, jsonData)
}

func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}
