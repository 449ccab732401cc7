//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestKafka_Publish(t *testing.T) {
	ctx := context.Background()

	container, err := redpanda.Run(ctx, "docker.redpanda.com/redpandadata/redpanda:v24.2.4", redpanda.WithAutoCreateTopics())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	broker, err := container.KafkaSeedBroker(ctx)
	require.NoError(t, err)

	publisher, err := NewKafka([]string{broker}, "punch-flagged", "pontolegal-test")
	require.NoError(t, err)
	defer publisher.Close()

	payload := map[string]string{"punch_id": "p-1", "employee_id": "emp-1"}
	require.NoError(t, publisher.Publish(ctx, "emp-1", payload))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker),
		kgo.ConsumeTopics("punch-flagged"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	pollCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(pollCtx)
	require.Empty(t, fetches.Errors())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "emp-1", string(records[0].Key))

	var got map[string]string
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.Equal(t, payload, got)
}
