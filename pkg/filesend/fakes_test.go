package filesend

import (
	"context"
	"errors"
	"time"
)

type fakeRecognizer struct {
	docs  map[string]Document
	calls int
}

func (r *fakeRecognizer) Recognize(_ context.Context, file FileContent) (Document, error) {
	r.calls++
	doc, ok := r.docs[file.Name]
	if !ok {
		return Document{}, errors.New("unknown file " + file.Name)
	}
	return doc, nil
}

type fakeCryptographer struct {
	err   error
	panic any
	calls int
}

func (c *fakeCryptographer) Sign(_ context.Context, content []byte, cert Certificate) ([]byte, error) {
	c.calls++
	if c.panic != nil {
		panic(c.panic)
	}
	if c.err != nil {
		return nil, c.err
	}
	return append([]byte(cert.Subject+":"), content...), nil
}

type fakeSender struct {
	err  error
	sent []Document
}

func (s *fakeSender) Send(_ context.Context, doc Document) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, doc)
	return nil
}

var fixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fixture struct {
	recognizer    *fakeRecognizer
	cryptographer *fakeCryptographer
	sender        *fakeSender
	fileSender    *FileSender
}

func newFixture(docs map[string]Document, opts ...Option) *fixture {
	f := &fixture{
		recognizer:    &fakeRecognizer{docs: docs},
		cryptographer: &fakeCryptographer{},
		sender:        &fakeSender{},
	}
	f.fileSender = New(f.cryptographer, f.sender, f.recognizer, append([]Option{WithClock(clock)}, opts...)...)
	return f
}

func file(name string) FileContent {
	return FileContent{Name: name, Data: []byte(name)}
}

var cert = Certificate{Subject: "cert"}
