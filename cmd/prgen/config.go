package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"github.com/stalker-loki/prgen"
	"github.com/urfave/cli/v2"
)

// prgenConfig is the TOML configuration file layout.
type prgenConfig struct {
	PRF   string
	Bits  int
	Count int
	Bytes int
}

var defaultConfig = prgenConfig{
	PRF:   prgen.NameHMACSHA256,
	Bits:  32,
	Count: 8,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

func loadConfig(file string, cfg *prgenConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig applies the config file, then explicitly set flags, on top of
// the defaults.
func loadBaseConfig(ctx *cli.Context) (prgenConfig, error) {
	cfg := defaultConfig

	if file := ctx.String(configFileFlagName); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(prfFlagName) {
		cfg.PRF = ctx.String(prfFlagName)
	}
	if ctx.IsSet(bitsFlagName) {
		cfg.Bits = ctx.Int(bitsFlagName)
	}
	if ctx.IsSet(countFlagName) {
		cfg.Count = ctx.Int(countFlagName)
	}
	if ctx.IsSet(bytesFlagName) {
		cfg.Bytes = ctx.Int(bytesFlagName)
	}
	return cfg, cfg.validate()
}

func (cfg prgenConfig) validate() error {
	if _, err := prgen.PRFByName(cfg.PRF); err != nil {
		return err
	}
	if cfg.Bits < 1 || cfg.Bits > 32 {
		return fmt.Errorf("bits must be in [1, 32], got %d", cfg.Bits)
	}
	if cfg.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", cfg.Count)
	}
	if cfg.Bytes < 0 {
		return fmt.Errorf("bytes must be non-negative, got %d", cfg.Bytes)
	}
	return nil
}
