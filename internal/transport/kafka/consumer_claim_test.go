package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"seller-console/internal/service/tracking"
	testlog "seller-console/internal/testutil"
)

type fakeSession struct {
	ctx context.Context

	mu     sync.Mutex
	marked int
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(*sarama.ConsumerMessage, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked++
}

func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "" }
func (s *fakeSession) GenerationID() int32                      { return 0 }

func (s *fakeSession) MarkedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marked
}

type fakeClaim struct {
	ch chan *sarama.ConsumerMessage
}

func (c fakeClaim) Topic() string              { return "t" }
func (c fakeClaim) Partition() int32           { return 0 }
func (c fakeClaim) InitialOffset() int64       { return 0 }
func (c fakeClaim) HighWaterMarkOffset() int64 { return 0 }
func (c fakeClaim) Messages() <-chan *sarama.ConsumerMessage {
	return c.ch
}

func claimOf(values ...[]byte) fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(values))
	for _, v := range values {
		ch <- &sarama.ConsumerMessage{Value: v}
	}
	close(ch)
	return fakeClaim{ch: ch}
}

func marshal(t *testing.T, dto EventDTO) []byte {
	t.Helper()
	b, err := json.Marshal(dto)
	require.NoError(t, err)
	return b
}

func TestConsumeClaim_BadJSON_Skips(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, tracking.Event) error {
			t.Fatal("handler must not be called")
			return nil
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	require.NoError(t, h.ConsumeClaim(sess, claimOf([]byte("not-json"))))
	require.Equal(t, 1, sess.MarkedCount())
	require.True(t, rec.HasMsg("kafka bad json"))
}

func TestConsumeClaim_EmptyOrderID_Skips(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	calls := 0
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, tracking.Event) error {
			calls++
			return nil
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	msg := marshal(t, EventDTO{OrderID: "   ", Bucket: 2})
	require.NoError(t, h.ConsumeClaim(sess, claimOf(msg)))
	require.Equal(t, 1, sess.MarkedCount())
	require.Zero(t, calls)
	require.True(t, rec.HasMsg("kafka empty order_id"))
}

func TestConsumeClaim_UnknownBucket_Skips(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, tracking.Event) error {
			t.Fatal("handler must not be called")
			return nil
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	msg := marshal(t, EventDTO{OrderID: "o1", Bucket: 42})
	require.NoError(t, h.ConsumeClaim(sess, claimOf(msg)))
	require.Equal(t, 1, sess.MarkedCount())
	require.True(t, rec.HasMsg("kafka unknown bucket"))
}

func TestConsumeClaim_HandlerError_Retries(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, tracking.Event) error {
			return errors.New("backend down")
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	msg := marshal(t, EventDTO{OrderID: "o1", Bucket: 2})
	require.Error(t, h.ConsumeClaim(sess, claimOf(msg)))
	// The failing message stays unmarked so the group redelivers it.
	require.Zero(t, sess.MarkedCount())
	require.True(t, rec.HasMsg("kafka handle failed, retry"))
}

func TestConsumeClaim_PermanentError_Drops(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, tracking.Event) error {
			return tracking.Permanent(errors.New("unfixable"))
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	msg := marshal(t, EventDTO{OrderID: "o1", Bucket: 2})
	require.NoError(t, h.ConsumeClaim(sess, claimOf(msg)))
	require.Equal(t, 1, sess.MarkedCount())
	require.True(t, rec.HasMsg("kafka event dropped"))
}

func TestConsumeClaim_ValidEvent_Handled(t *testing.T) {
	t.Parallel()

	var got tracking.Event
	c := &Consumer{
		logger: testlog.New().Logger(),
		handler: func(_ context.Context, ev tracking.Event) error {
			got = ev
			return nil
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	msg := marshal(t, EventDTO{OrderID: " o1 ", AWB: " AWB123 ", Bucket: 3})
	require.NoError(t, h.ConsumeClaim(sess, claimOf(msg)))
	require.Equal(t, 1, sess.MarkedCount())
	require.Equal(t, "o1", got.OrderID)
	require.Equal(t, "AWB123", got.AWB)
}
