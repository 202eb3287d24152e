package transport

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/filesend"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestStream_SendAndDecode(t *testing.T) {
	var buf bytes.Buffer
	stream := NewStream(&buf)
	created := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	require.NoError(t, stream.Send(context.Background(), filesend.Document{Format: "4.0", Created: created, Content: []byte("one")}))
	require.NoError(t, stream.Send(context.Background(), filesend.Document{Format: "3.1", Created: created, Content: []byte("two")}))

	frames, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	assert.Equal(t, "4.0", frames[0].Format)
	assert.Equal(t, []byte("one"), frames[0].Content)
	assert.True(t, created.Equal(frames[0].Created))
	assert.Equal(t, "3.1", frames[1].Format)
	assert.NotEqual(t, frames[0].ID, frames[1].ID)
	_, err = uuid.Parse(frames[0].ID)
	assert.NoError(t, err)
}

func TestStream_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewStream(&buf).Send(ctx, filesend.Document{Format: "4.0"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestStream_WriteError(t *testing.T) {
	err := NewStream(failingWriter{}).Send(context.Background(), filesend.Document{Format: "4.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestDecode_Empty(t *testing.T) {
	frames, err := Decode(&bytes.Buffer{})
	assert.NoError(t, err)
	assert.Empty(t, frames)
}
