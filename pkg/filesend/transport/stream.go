// Package transport delivers signed documents as MessagePack frames written
// to an io.Writer.
package transport

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ib-77/railway/pkg/filesend"
)

var _ filesend.Sender = (*Stream)(nil)

// Frame is one sent document on the wire.
type Frame struct {
	ID      string    `msgpack:"id"`
	Format  string    `msgpack:"format"`
	Created time.Time `msgpack:"created"`
	Content []byte    `msgpack:"content"`
}

type Stream struct {
	enc *msgpack.Encoder
}

func NewStream(w io.Writer) *Stream {
	return &Stream{enc: msgpack.NewEncoder(w)}
}

// Send writes doc as a single frame. A done context aborts before writing.
func (s *Stream) Send(ctx context.Context, doc filesend.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.enc.Encode(Frame{
		ID:      uuid.NewString(),
		Format:  doc.Format,
		Created: doc.Created,
		Content: doc.Content,
	})
}

// Decode reads every frame from r until EOF.
func Decode(r io.Reader) ([]Frame, error) {
	dec := msgpack.NewDecoder(r)
	var frames []Frame
	for {
		var f Frame
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return frames, nil
			}
			return frames, err
		}
		frames = append(frames, f)
	}
}
