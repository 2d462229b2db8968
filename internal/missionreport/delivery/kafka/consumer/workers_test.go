package consumer

import (
	"context"
	"errors"
	"testing"

	"mission-report-srv/config"
	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
	"mission-report-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	missionreport.UseCase

	calls []missionreport.GenerateRequestInput
	scope model.Scope
	err   error
}

func (f *fakeUseCase) GenerateRequested(ctx context.Context, sc model.Scope, input missionreport.GenerateRequestInput) (missionreport.GenerateOutput, error) {
	f.calls = append(f.calls, input)
	f.scope = sc
	if f.err != nil {
		return missionreport.GenerateOutput{}, f.err
	}
	return missionreport.GenerateOutput{Sequence: 1, Status: missionreport.StatusAccepted}, nil
}

func newTestConsumer(t *testing.T, uc missionreport.UseCase) *Consumer {
	t.Helper()
	c, err := New(Config{
		Logger:      log.NewNop(),
		KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		UseCase:     uc,
	})
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{UseCase: &fakeUseCase{}, KafkaConfig: config.KafkaConfig{Brokers: []string{"b"}}})
	assert.Error(t, err)

	_, err = New(Config{Logger: log.NewNop(), KafkaConfig: config.KafkaConfig{Brokers: []string{"b"}}})
	assert.Error(t, err)

	_, err = New(Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}})
	assert.Error(t, err)
}

func TestHandleGenerateRequestedMessage(t *testing.T) {
	tcs := map[string]struct {
		value     string
		ucErr     error
		wantCalls int
		wantErr   bool
	}{
		"valid request": {
			value:     `{"user_id":"u1","saved_report_id":"r1","params":{"size":5}}`,
			wantCalls: 1,
		},
		"malformed json is skipped": {
			value: `{not json`,
		},
		"missing user is skipped": {
			value: `{"saved_report_id":"r1"}`,
		},
		"unknown saved report is skipped": {
			value:     `{"user_id":"u1","saved_report_id":"missing"}`,
			ucErr:     missionreport.ErrSavedReportNotFound,
			wantCalls: 1,
		},
		"unexpected usecase error is retried": {
			value:     `{"user_id":"u1"}`,
			ucErr:     errors.New("boom"),
			wantCalls: 1,
			wantErr:   true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.ucErr}
			c := newTestConsumer(t, uc)

			err := c.handleGenerateRequestedMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(tc.value)})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, uc.calls, tc.wantCalls)
		})
	}
}

func TestHandleGenerateRequestedMessage_MapsInput(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(t, uc)

	value := `{"user_id":"u1","saved_report_id":"r1","params":{"size":5}}`
	require.NoError(t, c.handleGenerateRequestedMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(value)}))

	require.Len(t, uc.calls, 1)
	assert.Equal(t, "r1", uc.calls[0].SavedReportID)
	require.NotNil(t, uc.calls[0].Params)
	assert.Equal(t, 5, uc.calls[0].Params.Size)
	assert.Equal(t, "u1", uc.scope.UserID)
	assert.Equal(t, savedreport.RoleSystem, uc.scope.Role)
}

func TestTopicAndGroupDefaults(t *testing.T) {
	c := newTestConsumer(t, &fakeUseCase{})
	assert.Equal(t, "mission_report.generate.requested", c.topic())
	assert.Equal(t, "mission-report-consumer-generate", c.groupID())

	c.kafkaConfig.GenerateTopic = "custom.topic"
	c.kafkaConfig.ConsumerGroup = "custom-group"
	assert.Equal(t, "custom.topic", c.topic())
	assert.Equal(t, "custom-group", c.groupID())
}
