package event_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/event"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/model"
	"github.com/oceanbooking/oceanbooking/pkg/booking_server/storage"
	mock_storage "github.com/oceanbooking/oceanbooking/test/mock/booking_server/storage"
)

const endpoint = "/callback"

func (s *EventControllerTestSuite) outboxMsgs() []storage.OutboxMsg {
	evt := model.ShipmentEvent{
		ID:                "event-1",
		EventType:         model.BookingStatusReceived,
		DocumentReference: "ref-1",
	}
	raw, err := json.Marshal(evt)
	s.Require().NoError(err)
	return []storage.OutboxMsg{
		{
			RecID: 1,
			Key:   "event-1",
			Msg:   raw,
		},
	}
}

func (s *EventControllerTestSuite) runProcessor(callbackURL string, runFor time.Duration) {
	cfg := event.Config{CallbackURL: callbackURL, CheckInterval: 1, BatchSize: 10, Timeout: 5, MaxRetry: 3}
	proc, err := event.NewProcessorWithConfig(cfg, event.WithStorage(s.storage))
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		proc.Run(ctx)
	}()

	time.Sleep(runFor)
	cancel()
	wg.Wait()
}

func (s *EventControllerTestSuite) TestShipmentEventProcessor() {
	received := make(chan []byte, 1)
	s.mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.Assert().Equal("application/json", r.Header.Get("Content-Type"))
		s.Assert().Equal("event-1", r.Header.Get("X-Event-ID"))
		select {
		case received <- body:
		default:
		}
		w.WriteHeader(http.StatusOK)
	})

	callbackURL, err := url.JoinPath(s.server.URL, endpoint)
	s.Require().NoError(err)

	msgsOnDB := s.outboxMsgs()

	rtx1 := mock_storage.NewMockTx(s.ctrl)
	tx := mock_storage.NewMockTx(s.ctrl)
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx1, s.ctx, nil),
		s.storage.EXPECT().GetShipmentEventOutbox(gomock.Any(), rtx1, 10).Return(msgsOnDB, nil),
		rtx1.EXPECT().Rollback(gomock.Any()).Return(nil),

		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.storage.EXPECT().DeleteShipmentEventOutbox(gomock.Any(), tx, gomock.Eq(int64(1))).Return(nil),
		tx.EXPECT().Commit(gomock.Any()).Return(nil),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	rtx2 := mock_storage.NewMockTx(s.ctrl)
	s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx2, s.ctx, nil).AnyTimes()
	s.storage.EXPECT().GetShipmentEventOutbox(gomock.Any(), rtx2, 10).Return(nil, nil).AnyTimes()
	rtx2.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	s.runProcessor(callbackURL, 2*time.Second)

	select {
	case body := <-received:
		s.Assert().JSONEq(string(msgsOnDB[0].Msg), string(body))
	default:
		s.FailNow("callback endpoint never received the event")
	}
}

func (s *EventControllerTestSuite) TestShipmentEventProcessor_ReturnNon200() {
	s.mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	callbackURL, err := url.JoinPath(s.server.URL, endpoint)
	s.Require().NoError(err)

	msgsOnDB := s.outboxMsgs()

	rtx1 := mock_storage.NewMockTx(s.ctrl)
	tx := mock_storage.NewMockTx(s.ctrl)
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx1, s.ctx, nil),
		s.storage.EXPECT().GetShipmentEventOutbox(gomock.Any(), rtx1, 10).Return(msgsOnDB, nil),
		rtx1.EXPECT().Rollback(gomock.Any()).Return(nil),

		// The retry budget is exhausted and the row is dropped.
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.storage.EXPECT().DeleteShipmentEventOutbox(gomock.Any(), tx, gomock.Eq(int64(1))).Return(nil),
		tx.EXPECT().Commit(gomock.Any()).Return(nil),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	rtx2 := mock_storage.NewMockTx(s.ctrl)
	s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx2, s.ctx, nil).AnyTimes()
	s.storage.EXPECT().GetShipmentEventOutbox(gomock.Any(), rtx2, 10).Return(nil, nil).AnyTimes()
	rtx2.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	s.runProcessor(callbackURL, 3*time.Second)
}

func (s *EventControllerTestSuite) TestShipmentEventProcessor_ServerUnreachable() {
	callbackURL, err := url.JoinPath(s.server.URL, endpoint)
	s.Require().NoError(err)
	s.server.Close() // close the server to make it unreachable

	msgsOnDB := s.outboxMsgs()

	rtx1 := mock_storage.NewMockTx(s.ctrl)
	tx := mock_storage.NewMockTx(s.ctrl)
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx1, s.ctx, nil),
		s.storage.EXPECT().GetShipmentEventOutbox(gomock.Any(), rtx1, 10).Return(msgsOnDB, nil),
		rtx1.EXPECT().Rollback(gomock.Any()).Return(nil),

		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.storage.EXPECT().DeleteShipmentEventOutbox(gomock.Any(), tx, gomock.Eq(int64(1))).Return(nil),
		tx.EXPECT().Commit(gomock.Any()).Return(nil),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	rtx2 := mock_storage.NewMockTx(s.ctrl)
	s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx2, s.ctx, nil).AnyTimes()
	s.storage.EXPECT().GetShipmentEventOutbox(gomock.Any(), rtx2, 10).Return(nil, nil).AnyTimes()
	rtx2.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	s.runProcessor(callbackURL, 3*time.Second)
}

func (s *EventControllerTestSuite) TestShipmentEventProcessor_ContextCancelled() {
	s.mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
		w.WriteHeader(http.StatusOK)
	})

	callbackURL, err := url.JoinPath(s.server.URL, endpoint)
	s.Require().NoError(err)

	msgsOnDB := s.outboxMsgs()

	rtx1 := mock_storage.NewMockTx(s.ctrl)
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(rtx1, s.ctx, nil),
		s.storage.EXPECT().GetShipmentEventOutbox(gomock.Any(), rtx1, 10).Return(msgsOnDB, nil),
		rtx1.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	s.runProcessor(callbackURL, 2*time.Second)
}
