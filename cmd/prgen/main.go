// prgen prints output of a backtracking-resistant pseudo-random generator
// seeded with a hex-encoded key.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/stalker-loki/prgen"
	"github.com/urfave/cli/v2"
)

// Flag names. cli flags keep state from Apply, so every App gets fresh ones
// from newFlags.
const (
	keyFlagName        = "key"
	prfFlagName        = "prf"
	bitsFlagName       = "bits"
	countFlagName      = "count"
	bytesFlagName      = "bytes"
	configFileFlagName = "config"

	keyEnvVar = "PRGEN_KEY"
)

func newFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    keyFlagName,
			Usage:   fmt.Sprintf("Hex-encoded %d-byte generator key", prgen.KeySize),
			EnvVars: []string{keyEnvVar},
		},
		&cli.StringFlag{
			Name:  prfFlagName,
			Usage: "PRF to ratchet with (" + strings.Join(prgen.PRFNames(), ", ") + ")",
			Value: defaultConfig.PRF,
		},
		&cli.IntFlag{
			Name:  bitsFlagName,
			Usage: "Number of pseudo-random bits per value (1-32)",
			Value: defaultConfig.Bits,
		},
		&cli.IntFlag{
			Name:  countFlagName,
			Usage: "Number of values to print",
			Value: defaultConfig.Count,
		},
		&cli.IntFlag{
			Name:  bytesFlagName,
			Usage: "Print this many pseudo-random bytes per line in hex instead of integers",
			Value: defaultConfig.Bytes,
		},
		&cli.StringFlag{
			Name:  configFileFlagName,
			Usage: "TOML configuration file",
		},
	}
	return append(flags, loggingFlags()...)
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "prgen",
		Usage:  "print output of a backtracking-resistant pseudo-random generator",
		Flags:  newFlags(),
		Before: setupLogging,
		Action: generate,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate is the default action: it prints cfg.Count values.
func generate(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	key, err := decodeKey(ctx.String(keyFlagName))
	if err != nil {
		return err
	}
	prg, err := prgen.New(key, prgen.WithPRFName(cfg.PRF))
	clear(key)
	if err != nil {
		return err
	}
	defer prg.Wipe()

	slog.Debug("Generating output", "prf", cfg.PRF, "count", cfg.Count, "bits", cfg.Bits, "bytes", cfg.Bytes)

	w := bufio.NewWriter(ctx.App.Writer)
	buf := make([]byte, cfg.Bytes)
	for i := 0; i < cfg.Count; i++ {
		if cfg.Bytes > 0 {
			// Read always fills the whole buffer and never fails.
			_, _ = prgen.Read(prg, buf)
			fmt.Fprintln(w, hex.EncodeToString(buf))
		} else {
			fmt.Fprintln(w, prg.NextBits(cfg.Bits))
		}
	}
	clear(buf)
	return w.Flush()
}

func decodeKey(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("missing key: use --" + keyFlagName + " or " + keyEnvVar)
	}
	key, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}
	return key, nil
}
