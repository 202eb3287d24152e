package filesend

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"slices"
	"time"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
	"github.com/ib-77/railway/pkg/rop/tiny"
)

const (
	prepareErrorPrefix = "Can't prepare file to send"
	sendErrorPrefix    = "Can't send"
)

var (
	ErrInvalidFormat = errors.New("Invalid format version")
	ErrTooOld        = errors.New("Too old document")
)

var (
	DefaultFormats = []string{"4.0", "3.1"}

	DefaultMaxAgeMonths = 1
)

type FileSender struct {
	cryptographer Cryptographer
	sender        Sender
	recognizer    Recognizer
	now           func() time.Time
	formats       []string
	maxAgeMonths  int
	logger        *slog.Logger
}

type Option func(*FileSender)

// WithClock replaces time.Now as the source of the freshness boundary.
func WithClock(now func() time.Time) Option {
	return func(s *FileSender) {
		if now != nil {
			s.now = now
		}
	}
}

func WithAcceptedFormats(formats ...string) Option {
	return func(s *FileSender) {
		if len(formats) > 0 {
			s.formats = slices.Clone(formats)
		}
	}
}

// WithMaxAge sets how many calendar months old a document may be.
func WithMaxAge(months int) Option {
	return func(s *FileSender) {
		if months > 0 {
			s.maxAgeMonths = months
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *FileSender) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(cryptographer Cryptographer, sender Sender, recognizer Recognizer, opts ...Option) *FileSender {
	s := &FileSender{
		cryptographer: cryptographer,
		sender:        sender,
		recognizer:    recognizer,
		now:           time.Now,
		formats:       slices.Clone(DefaultFormats),
		maxAgeMonths:  DefaultMaxAgeMonths,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendFiles returns a lazy sequence with one result per file, in input order.
// Nothing is processed until the sequence is ranged over, and every range
// runs recognition, signing and sending again.
func (s *FileSender) SendFiles(ctx context.Context, files []FileContent, cert Certificate) iter.Seq[FileSendResult] {
	return func(yield func(FileSendResult) bool) {
		for _, file := range files {
			if !yield(s.sendFile(ctx, file, cert)) {
				return
			}
		}
	}
}

// PrepareFileToSend runs every stage except sending. Failures carry the
// "Can't prepare file to send" prefix.
func (s *FileSender) PrepareFileToSend(ctx context.Context, file FileContent, cert Certificate) rop.Result[Document] {
	recognized := rop.Of(func() (Document, error) {
		return s.recognizer.Recognize(ctx, file)
	})

	return tiny.Start(ctx, recognized).
		Check(s.isValidFormatVersion, ErrInvalidFormat).
		Check(s.isValidTimestamp, ErrTooOld).
		ThenTry(func(ctx context.Context, doc Document) (Document, error) {
			signed, err := s.cryptographer.Sign(ctx, doc.Content, cert)
			if err != nil {
				return Document{}, err
			}
			return doc.ChangeContent(signed), nil
		}).
		Result().
		RefineError(prepareErrorPrefix)
}

func (s *FileSender) sendFile(ctx context.Context, file FileContent, cert Certificate) FileSendResult {
	sent := rop.ThenResult(s.PrepareFileToSend(ctx, file, cert), func(doc Document) rop.Result[Document] {
		return rop.Of(func() (Document, error) {
			return doc, s.sender.Send(ctx, doc)
		}).RefineError(sendErrorPrefix)
	}).OnFail(func(message string) {
		s.logger.Warn("file not sent", slog.String("file", file.Name), slog.String("error", message))
	})

	return solo.Finally(ctx, sent,
		func(ctx context.Context, doc Document) FileSendResult {
			s.logger.Debug("file sent", slog.String("file", file.Name), slog.String("format", doc.Format))
			return newFileSendResult(file, "")
		},
		func(ctx context.Context, err error) FileSendResult {
			return newFileSendResult(file, err.Error())
		})
}

func (s *FileSender) isValidFormatVersion(_ context.Context, doc Document) bool {
	return slices.Contains(s.formats, doc.Format)
}

func (s *FileSender) isValidTimestamp(_ context.Context, doc Document) bool {
	return doc.Created.After(addMonths(s.now(), -s.maxAgeMonths))
}
