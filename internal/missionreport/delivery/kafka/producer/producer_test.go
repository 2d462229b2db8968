package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	kafkaDelivery "mission-report-srv/internal/missionreport/delivery/kafka"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	key   []byte
	value []byte
	err   error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	f.key = key
	f.value = value
	return f.err
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func TestPublish(t *testing.T) {
	fp := &fakeProducer{}
	p := New(log.NewNop(), fp, kafkaDelivery.TopicChartsPublished)

	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := missionreport.WithGeneration(context.Background(), missionreport.GenerationInfo{Sequence: 4, GeneratedAt: at})
	list := chart.List{Charts: []chart.Config{{ID: chart.IDSummary}}}

	err := p.Publish(ctx, model.Scope{UserID: "u1"}, list)
	require.NoError(t, err)

	assert.Equal(t, []byte("u1"), fp.key)

	var msg kafkaDelivery.ChartsPublishedMessage
	require.NoError(t, json.Unmarshal(fp.value, &msg))
	assert.Equal(t, "u1", msg.UserID)
	assert.Equal(t, uint64(4), msg.Sequence)
	assert.True(t, at.Equal(msg.GeneratedAt))
	require.Len(t, msg.Charts.Charts, 1)
	assert.Equal(t, chart.IDSummary, msg.Charts.Charts[0].ID)
}

func TestPublish_ProducerError(t *testing.T) {
	fp := &fakeProducer{err: errors.New("broker down")}
	p := New(log.NewNop(), fp, kafkaDelivery.TopicChartsPublished)

	err := p.Publish(context.Background(), model.Scope{UserID: "u1"}, chart.List{})
	assert.Error(t, err)
}
