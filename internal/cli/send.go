package cli

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ib-77/railway/internal/config"
	"github.com/ib-77/railway/pkg/filesend"
	"github.com/ib-77/railway/pkg/filesend/recognize"
	"github.com/ib-77/railway/pkg/filesend/sign"
	"github.com/ib-77/railway/pkg/filesend/transport"
)

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send FILE...",
		Short: "Recognize, validate, sign and send files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSend,
	}
	cmd.Flags().String("key", "", "hex-encoded Ed25519 seed file (overrides config)")
	cmd.Flags().String("out", "", "output stream file (overrides config)")
	cmd.Flags().Bool("verbose", false, "log every file")
	return cmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if v, _ := cmd.Flags().GetString("key"); v != "" {
		cfg.KeyFile = v
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.Out = v
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	return cfg, nil
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cert, err := readCertificate(cfg)
	if err != nil {
		return err
	}

	files := make([]filesend.FileContent, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, filesend.FileContent{Name: filepath.Base(path), Data: data})
	}

	out, err := os.Create(cfg.Out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	sender := filesend.New(
		sign.NewEd25519(time.Now),
		transport.NewStream(out),
		recognize.YAML{},
		filesend.WithAcceptedFormats(cfg.Formats...),
		filesend.WithMaxAge(cfg.MaxAgeMonths),
		filesend.WithLogger(logger),
	)

	failed := 0
	for res := range sender.SendFiles(cmd.Context(), files, cert) {
		if res.IsSuccess() {
			cmd.Printf("OK   %s\n", res.File.Name)
			continue
		}
		failed++
		cmd.Printf("FAIL %s: %s\n", res.File.Name, res.Error)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files not sent", failed, len(files))
	}
	return nil
}

func readCertificate(cfg config.Config) (filesend.Certificate, error) {
	data, err := os.ReadFile(cfg.KeyFile)
	if err != nil {
		return filesend.Certificate{}, fmt.Errorf("read key: %w", err)
	}
	seed, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return filesend.Certificate{}, fmt.Errorf("decode key %s: %w", cfg.KeyFile, err)
	}
	return sign.Certificate(cfg.Subject, seed, time.Time{})
}
