package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/TACITVS/Keccak-Feistel-Golang/keccak"
)

var permuteCmd = &cli.Command{
	Name:      "permute",
	Usage:     "apply Keccak-f[1600] to a hex state (all zero by default)",
	ArgsUsage: "[HEX]",
	Action: func(cctx *cli.Context) error {
		var state [keccak.StateSize]byte
		if arg := strings.TrimSpace(cctx.Args().First()); arg != "" {
			b, err := hex.DecodeString(arg)
			if err != nil {
				return fmt.Errorf("decoding state: %w", err)
			}
			if len(b) != keccak.StateSize {
				return fmt.Errorf("state must be %d bytes, got %d", keccak.StateSize, len(b))
			}
			copy(state[:], b)
		}
		keccak.Permute(&state)
		_, err := fmt.Fprintln(cctx.App.Writer, hex.EncodeToString(state[:]))
		return err
	},
}
