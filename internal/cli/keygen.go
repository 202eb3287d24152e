package cli

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

func newKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Write a new Ed25519 signing key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			pub, priv, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")
			if err := writeKey(cfg.KeyFile, priv.Seed(), force); err != nil {
				return err
			}

			cmd.Printf("public key %s\n", hex.EncodeToString(pub))
			return nil
		},
	}
	cmd.Flags().String("key", "", "where to write the seed (overrides config)")
	cmd.Flags().Bool("force", false, "overwrite an existing key file")
	return cmd
}

// writeKey stores seed hex-encoded at path. An existing file is kept unless
// force is set.
func writeKey(path string, seed []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("key file %s already exists, use --force to replace it", path)
		}
		return fmt.Errorf("write key: %w", err)
	}

	if _, err := f.WriteString(hex.EncodeToString(seed) + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("write key: %w", err)
	}
	return f.Close()
}
