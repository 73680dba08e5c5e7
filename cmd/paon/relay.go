package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gilcrest/diygoapi/errs"
	"github.com/rs/zerolog"

	"github.com/ezodude/paon"
)

const MessageTooLarge errs.Code = "Paon:MessageTooLarge"

type Relay struct {
	broker *paon.Broker[string]
	cfg    Config
	logger zerolog.Logger

	published int
	failed    int
}

func NewRelay(cfg Config, logger zerolog.Logger) *Relay {
	r := &Relay{
		broker: paon.NewBroker[string](logger),
		cfg:    cfg,
		logger: logger,
	}
	for _, channel := range cfg.Channels {
		r.attach(strings.TrimSpace(channel))
	}
	return r
}

// Run processes in line by line until EOF. Lines have no length limit, so an
// oversized message still reaches its observers and fails there. In strict
// mode the first failed publish stops the relay and is returned.
func (r *Relay) Run(in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("failed to read relay input: %w", readErr)
		}

		if err := r.handleLine(line); err != nil {
			if r.cfg.Strict {
				return err
			}
			r.logger.Warn().Err(err).Msg("Publish failed, continuing")
		}

		if readErr == io.EOF {
			break
		}
	}

	r.logger.Info().
		Int("published", r.published).
		Int("failed", r.failed).
		Strs("channels", r.broker.Channels()).
		Msg("Relay input drained")
	return nil
}

func (r *Relay) handleLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	switch line[0] {
	case '+':
		r.attach(strings.TrimSpace(line[1:]))
		return nil
	case '-':
		r.broker.UnsubscribeAll(strings.TrimSpace(line[1:]))
		return nil
	}

	channel, message, _ := strings.Cut(line, " ")
	if err := r.broker.Publish(channel, message); err != nil {
		r.failed++
		return err
	}
	r.published++
	return nil
}

func (r *Relay) attach(channel string) {
	if channel == "" {
		return
	}

	var observer *paon.Observer[string]
	observer = paon.NewObserver(func(msg string) error {
		if r.cfg.MaxMessageBytes > 0 && len(msg) > r.cfg.MaxMessageBytes {
			return errs.E(errs.Validation, MessageTooLarge, errs.Parameter(channel),
				fmt.Sprintf("message of %d bytes exceeds %d", len(msg), r.cfg.MaxMessageBytes))
		}
		r.logger.Info().
			Str("channel", channel).
			Str("observerID", observer.ID()).
			Str("payload", msg).
			Msg("Message delivered")
		return nil
	})
	r.broker.Subscribe(channel, observer)
}
