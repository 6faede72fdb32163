package messaging

import (
	"fmt"

	"github.com/jobportal/job-portal-service/common/config"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// NatsBroker publishes domain events. A nil broker is valid and drops
// everything, so callers never have to guard on configuration.
type NatsBroker struct {
	conn *nats.Conn
}

// Setup connects to NATS when configured. Returns nil (no broker, no error)
// when the host is unset.
func Setup(cfg config.Config) (*NatsBroker, error) {
	if !cfg.Nats.Enabled() {
		return nil, nil
	}

	opts := []nats.Option{
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn().Err(err).Msg("Disconnected from NATS")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("server", nc.ConnectedUrl()).Msg("Reconnected to NATS")
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info().Msg("NATS connection closed")
		}),
	}

	if cfg.Nats.Username != "" && cfg.Nats.Password != "" {
		opts = append(opts, nats.UserInfo(cfg.Nats.Username, cfg.Nats.Password))
	}

	conn, err := nats.Connect(cfg.Nats.URL(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Info().Str("server", conn.ConnectedUrl()).Msg("Connected to NATS")
	return &NatsBroker{conn: conn}, nil
}

// Close drains the connection, gracefully flushing pending publishes.
func (b *NatsBroker) Close() {
	if b == nil || b.conn == nil {
		return
	}
	if err := b.conn.Drain(); err != nil {
		log.Warn().Err(err).Msg("Error draining NATS connection")
	}
}

// Publish publishes a message to a subject
func (b *NatsBroker) Publish(subject string, data []byte) error {
	if b == nil || b.conn == nil {
		return nil
	}
	if !b.conn.IsConnected() {
		return fmt.Errorf("not connected to NATS")
	}
	return b.conn.Publish(subject, data)
}
