package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mission-report-srv/internal/missionreport"
	rmqDelivery "mission-report-srv/internal/missionreport/delivery/rabbitmq"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	rabbitmq.IChannel

	declared   []rabbitmq.ExchangeArgs
	published  []rabbitmq.PublishArgs
	declareErr error
	publishErr error
}

func (f *fakeChannel) ExchangeDeclare(exc rabbitmq.ExchangeArgs) error {
	f.declared = append(f.declared, exc)
	return f.declareErr
}

func (f *fakeChannel) Publish(ctx context.Context, publish rabbitmq.PublishArgs) error {
	f.published = append(f.published, publish)
	return f.publishErr
}

func TestNew_DeclaresFanoutExchange(t *testing.T) {
	ch := &fakeChannel{}
	_, err := New(log.NewNop(), ch, "")
	require.NoError(t, err)

	require.Len(t, ch.declared, 1)
	assert.Equal(t, rmqDelivery.ExchangeGenerationErrors, ch.declared[0].Name)
	assert.Equal(t, rabbitmq.ExchangeTypeFanout, ch.declared[0].Type)
	assert.True(t, ch.declared[0].Durable)
}

func TestNew_DeclareError(t *testing.T) {
	_, err := New(log.NewNop(), &fakeChannel{declareErr: errors.New("closed")}, "errors")
	assert.Error(t, err)
}

func TestError_Publishes(t *testing.T) {
	ch := &fakeChannel{}
	n, err := New(log.NewNop(), ch, "mr.errors")
	require.NoError(t, err)

	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	n.(*implProducer).now = func() time.Time { return at }

	ctx := missionreport.WithGeneration(context.Background(), missionreport.GenerationInfo{Sequence: 7})
	require.NoError(t, n.Error(ctx, model.Scope{UserID: "u1"}, errors.New("query failed")))

	require.Len(t, ch.published, 1)
	pub := ch.published[0]
	assert.Equal(t, "mr.errors", pub.Exchange)
	assert.Equal(t, rabbitmq.ContentTypeJSON, pub.Msg.ContentType)

	var msg rmqDelivery.GenerationErrorMessage
	require.NoError(t, json.Unmarshal(pub.Msg.Body, &msg))
	assert.Equal(t, "u1", msg.UserID)
	assert.Equal(t, uint64(7), msg.Sequence)
	assert.Equal(t, "query failed", msg.Error)
	assert.True(t, at.Equal(msg.OccurredAt))
}

func TestError_PublishFailure(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("closed")}
	n, err := New(log.NewNop(), ch, "mr.errors")
	require.NoError(t, err)

	assert.Error(t, n.Error(context.Background(), model.Scope{UserID: "u1"}, errors.New("x")))
}
