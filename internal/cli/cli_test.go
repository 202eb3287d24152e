package cli

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/filesend"
	"github.com/ib-77/railway/pkg/filesend/recognize"
	"github.com/ib-77/railway/pkg/filesend/sign"
	"github.com/ib-77/railway/pkg/filesend/transport"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeDoc(t *testing.T, dir, name string, doc filesend.Document) string {
	t.Helper()
	data, err := recognize.Encode(doc)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := run(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "filesend version test-version-1.0.0")
}

func TestKeygenAndSend(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	outFile := filepath.Join(dir, "sent.msgpack")

	out, err := run(t, "keygen", "--key", keyFile)
	require.NoError(t, err)
	pubHex := strings.TrimPrefix(strings.TrimSpace(out), "public key ")
	pub, err := hex.DecodeString(pubHex)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	good := writeDoc(t, dir, "good.yaml", filesend.Document{Format: "4.0", Created: now, Content: []byte("hello")})
	old := writeDoc(t, dir, "old.yaml", filesend.Document{Format: "4.0", Created: now.AddDate(0, -3, 0)})
	bad := writeDoc(t, dir, "bad.yaml", filesend.Document{Format: "2.0", Created: now})

	out, err = run(t, "send", "--key", keyFile, "--out", outFile, good, old, bad)

	assert.EqualError(t, err, "2 of 3 files not sent")
	assert.Contains(t, out, "OK   good.yaml")
	assert.Contains(t, out, "FAIL old.yaml: Can't prepare file to send Too old document")
	assert.Contains(t, out, "FAIL bad.yaml: Can't prepare file to send Invalid format version")

	f, err := os.Open(outFile)
	require.NoError(t, err)
	defer f.Close()
	frames, err := transport.Decode(f)
	require.NoError(t, err)
	require.Len(t, frames, 1)

	content, err := sign.Verify(ed25519.PublicKey(pub), frames[0].Content)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)
}

func TestKeygen_KeepsExistingKey(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(keyFile, []byte("existing\n"), 0o600))

	_, err := run(t, "keygen", "--key", keyFile)

	assert.ErrorContains(t, err, "already exists, use --force")
	data, err := os.ReadFile(keyFile)
	require.NoError(t, err)
	assert.Equal(t, "existing\n", string(data))

	out, err := run(t, "keygen", "--key", keyFile, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "public key ")
	data, err = os.ReadFile(keyFile)
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(string(data)), 2*ed25519.SeedSize)
}

func TestSend_MissingKey(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "a.yaml", filesend.Document{Format: "4.0", Created: time.Now()})

	_, err := run(t, "send", "--key", filepath.Join(dir, "nope"), "--out", filepath.Join(dir, "out"), doc)

	assert.ErrorContains(t, err, "read key")
}

func TestSend_RequiresFiles(t *testing.T) {
	_, err := run(t, "send")
	assert.Error(t, err)
}
