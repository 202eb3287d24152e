// Package recognize turns raw files into filesend documents.
package recognize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/railway/pkg/filesend"
)

var ErrEmptyFile = errors.New("empty file")

var _ filesend.Recognizer = YAML{}

// envelope is the on-disk layout of a document:
//
//	format: "4.0"
//	created: 2026-10-01T09:00:00Z
//	content: |
//	  ...
type envelope struct {
	Format  string    `yaml:"format"`
	Created time.Time `yaml:"created"`
	Content string    `yaml:"content"`
}

// YAML recognizes documents stored as YAML envelopes.
type YAML struct{}

func (YAML) Recognize(_ context.Context, file filesend.FileContent) (filesend.Document, error) {
	if len(file.Data) == 0 {
		return filesend.Document{}, fmt.Errorf("%s: %w", file.Name, ErrEmptyFile)
	}

	var env envelope
	if err := yaml.Unmarshal(file.Data, &env); err != nil {
		return filesend.Document{}, fmt.Errorf("%s: %w", file.Name, err)
	}

	return filesend.Document{
		Format:  env.Format,
		Created: env.Created,
		Content: []byte(env.Content),
	}, nil
}

// Encode writes doc as a YAML envelope that YAML can recognize.
func Encode(doc filesend.Document) ([]byte, error) {
	return yaml.Marshal(envelope{
		Format:  doc.Format,
		Created: doc.Created,
		Content: string(doc.Content),
	})
}
