package filesend

import (
	"bytes"
	"crypto"
	"time"
)

// FileContent is a raw input file as handed to the Recognizer.
type FileContent struct {
	Name string
	Data []byte
}

// Document is a recognized file.
type Document struct {
	Format  string
	Created time.Time
	Content []byte
}

// ChangeContent returns a copy of d holding content. d is left untouched.
func (d Document) ChangeContent(content []byte) Document {
	return Document{
		Format:  d.Format,
		Created: d.Created,
		Content: bytes.Clone(content),
	}
}

// Certificate is the signing credential passed through to the Cryptographer.
type Certificate struct {
	Subject  string
	NotAfter time.Time
	Key      crypto.Signer
}
