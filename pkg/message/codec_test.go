package message_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incollege/backend/pkg/message"
)

func TestCodecEncode(t *testing.T) {
	line, err := message.Codec{}.Encode(message.Chunk{
		ID:        42,
		Sender:    "jdoe",
		Recipient: "asmith",
		Timestamp: "20260115093000",
		Text:      "hello",
	})
	require.NoError(t, err)
	require.Len(t, line, message.RecordWidth)
	assert.True(t, strings.HasPrefix(line, "00000042jdoe"))
}

func TestCodecDecodeKeepsTextPadding(t *testing.T) {
	// The text field keeps its trailing padding on decode; trimming happens
	// once, after reassembly, so boundary spaces inside a message survive.
	line, err := message.Codec{}.Encode(message.Chunk{
		ID: 1, Sender: "jdoe", Recipient: "asmith",
		Timestamp: "20260115093000", Text: "ends with space ",
	})
	require.NoError(t, err)

	c := message.Codec{}.Decode(line)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "jdoe", c.Sender)
	assert.Equal(t, "asmith", c.Recipient)
	assert.Equal(t, "20260115093000", c.Timestamp)
	assert.Len(t, c.Text, message.ChunkTextWidth)
	assert.True(t, strings.HasPrefix(c.Text, "ends with space "))
}
