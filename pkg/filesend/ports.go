package filesend

import "context"

type Recognizer interface {
	Recognize(ctx context.Context, file FileContent) (Document, error)
}

type Cryptographer interface {
	Sign(ctx context.Context, content []byte, cert Certificate) ([]byte, error)
}

type Sender interface {
	Send(ctx context.Context, doc Document) error
}
