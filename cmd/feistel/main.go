// Command feistel hashes files with the Keccak sponge and encrypts or
// decrypts whole-block messages with the sponge-keyed Feistel cipher.
package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"
)

// Automatically set through -ldflags
// Example: go install -ldflags "-X main.version=`git describe --tags`
//   -X main.buildDate=`date -u +%d/%m/%Y@%H:%M:%S` -X main.gitCommit=`git rev-parse HEAD`"
var (
	version   = "master"
	gitCommit = "none"
	buildDate = "unknown"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:     "feistel",
		Version:  version,
		Usage:    "Keccak sponge hashing and sponge-keyed Feistel encryption",
		Flags:    []cli.Flag{configFlag, logLevelFlag, logJSONFlag},
		Commands: []*cli.Command{hashCmd, encryptCmd, decryptCmd, permuteCmd},
	}
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "feistel %v (date %v, commit %v)\n", version, buildDate, gitCommit)
	}
	return app
}
