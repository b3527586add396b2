package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"github.com/TACITVS/Keccak-Feistel-Golang/internal/config"
	"github.com/TACITVS/Keccak-Feistel-Golang/internal/log"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "TOML configuration file",
		EnvVars: []string{"FEISTEL_CONFIG"},
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level: debug, info, warn or error (overrides the config file)",
	}
	logJSONFlag = &cli.BoolFlag{
		Name:  "log-json",
		Usage: "log as JSON (overrides the config file)",
	}

	inFlag = &cli.StringFlag{
		Name:  "in",
		Usage: "input file (default: stdin)",
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "output file (default: stdout)",
	}
)

// settings loads the config file, applies global flag overrides and builds
// the logger.
func settings(cctx *cli.Context) (config.Config, log.Logger, error) {
	cfg := config.Default()
	if path := cctx.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, nil, err
		}
	}
	if cctx.IsSet(logLevelFlag.Name) {
		cfg.Log.Level = cctx.String(logLevelFlag.Name)
	}
	if cctx.IsSet(logJSONFlag.Name) {
		cfg.Log.JSON = cctx.Bool(logJSONFlag.Name)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, err
	}
	l := log.New(zapcore.AddSync(cctx.App.ErrWriter), level, cfg.Log.JSON).Named(cctx.Command.Name)
	return cfg, l, nil
}

func openInput(cctx *cli.Context, path string) (io.ReadCloser, uint64, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cctx.App.Reader), 0, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, uint64(info.Size()), nil
}

func writeOutput(cctx *cli.Context, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cctx.App.Writer.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// decodeHexOrFile returns the bytes of a hex flag or, failing that, the raw
// contents of a file flag. ok is false when neither is set.
func decodeHexOrFile(cctx *cli.Context, hexFlag, fileFlag string) (b []byte, ok bool, err error) {
	switch {
	case cctx.IsSet(hexFlag) && cctx.IsSet(fileFlag):
		return nil, false, fmt.Errorf("--%s and --%s are mutually exclusive", hexFlag, fileFlag)
	case cctx.IsSet(hexFlag):
		b, err = hex.DecodeString(strings.TrimSpace(cctx.String(hexFlag)))
		if err != nil {
			return nil, false, fmt.Errorf("decoding --%s: %w", hexFlag, err)
		}
		return b, true, nil
	case cctx.IsSet(fileFlag):
		b, err = os.ReadFile(cctx.String(fileFlag))
		if err != nil {
			return nil, false, fmt.Errorf("reading --%s: %w", fileFlag, err)
		}
		return b, true, nil
	}
	return nil, false, nil
}
