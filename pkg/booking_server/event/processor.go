package event

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage/postgres"
	"github.com/oceanbooking/oceanbooking/pkg/util"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Database      util.PostgresDatabaseConfig
	CallbackURL   string
	CheckInterval int
	BatchSize     int
	Timeout       int
	MaxRetry      int
}

type ProcessorOption func(p *Processor)

func WithStorage(eventStorage storage.EventStorage) ProcessorOption {
	return func(p *Processor) {
		p.storage = eventStorage
	}
}

// Processor drains the shipment event outbox and POSTs each event to the
// configured callback URL. Delivered rows are deleted; undeliverable rows
// are dropped after the retry budget so one dead endpoint cannot wedge the
// outbox.
type Processor struct {
	callbackURL   string
	retry         int
	batchSize     int
	checkInterval time.Duration
	timeout       time.Duration
	storage       storage.EventStorage
}

func NewProcessorWithConfig(cfg Config, opts ...ProcessorOption) (*Processor, error) {
	res := &Processor{
		callbackURL:   cfg.CallbackURL,
		retry:         cfg.MaxRetry,
		batchSize:     cfg.BatchSize,
		checkInterval: time.Second * time.Duration(cfg.CheckInterval),
		timeout:       time.Second * time.Duration(cfg.Timeout),
	}

	for _, opt := range opts {
		opt(res)
	}
	if res.storage == nil {
		eventStorage, err := postgres.NewStorageWithConfig(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("create storage: %w", err)
		}
		res.storage = eventStorage
	}

	return res, nil
}

func (p *Processor) Run(ctx context.Context) {
	logrus.Info("ShipmentEvent processor is now running")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.checkInterval):
			p._Proc(ctx)
		}
	}
}

func (p *Processor) _Proc(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msgs, err := p.getEvent(ctx)
		if err != nil {
			logrus.Errorf("failed to get ShipmentEvent: %v", err)
			return
		}
		if len(msgs) == 0 {
			return
		}

		logrus.Debugf("Got %d ShipmentEvents", len(msgs))
		ids := make([]int64, 0, len(msgs))
		for i := range msgs {
			err = p.postEvent(ctx, msgs[i])
			if err != nil {
				logrus.Warnf("failed to post ShipmentEvent: %v", err)
				if !errors.Is(err, model.ErrCallbackUnreachable) {
					continue
				}
			}

			ids = append(ids, msgs[i].RecID)
		}

		if len(ids) == 0 {
			return
		}

		err = p.deleteEvent(ctx, ids...)
		if err != nil {
			logrus.Errorf("failed to delete ShipmentEvent: %v", err)
		}

		logrus.Debugf("POSTed %d ShipmentEvents", len(ids))
	}
}

func (p *Processor) postEvent(ctx context.Context, msg storage.OutboxMsg) error {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	transport.MaxIdleConnsPerHost = -1
	client := http.Client{Timeout: p.timeout, Transport: transport}

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.callbackURL, bytes.NewReader(msg.Msg))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create http request: %v", err))
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Event-ID", msg.Key)

			resp, err := client.Do(req)
			if err != nil {
				logrus.Debugf("send http request: %v", err)
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				logrus.Debugf("%s returned %v: %s", p.callbackURL, resp.StatusCode, string(body))
				return fmt.Errorf("unexpected status code: %v", resp.StatusCode)
			}

			return nil
		},
		retry.Attempts(uint(p.retry)),
		retry.Context(ctx),
	)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("exceed maximum retries posting shipment event. %w", model.ErrCallbackUnreachable)
	}
	return nil
}

func (p *Processor) getEvent(ctx context.Context) ([]storage.OutboxMsg, error) {
	tx, ctx, err := p.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outboxMsgs, err := p.storage.GetShipmentEventOutbox(ctx, tx, p.batchSize)
	if err != nil {
		return nil, err
	}

	if len(outboxMsgs) == 0 {
		return nil, nil
	}

	return outboxMsgs, nil
}

func (p *Processor) deleteEvent(ctx context.Context, recIDs ...int64) error {
	tx, ctx, err := p.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = p.storage.DeleteShipmentEventOutbox(ctx, tx, recIDs...)
	if err != nil {
		return err
	}
	err = tx.Commit(ctx)
	if err != nil {
		return err
	}

	return nil
}
