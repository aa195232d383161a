package kafka_test

import (
	"testing"

	"atoll/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "booking.created", Value: map[string]any{"id": "b1", "rooms": 2}}

	out, err := msg.ToKafkaMessage("atoll.events")
	require.NoError(t, err)

	assert.Equal(t, "atoll.events", out.Topic)
	assert.Equal(t, []byte("booking.created"), out.Key)
	assert.JSONEq(t, `{"id":"b1","rooms":2}`, string(out.Value))
}

func TestMessage_ToKafkaMessageRejectsUnencodable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("atoll.events")
	assert.Error(t, err)
}
