package main

import (
	"fmt"
	"os"
	"path"
	"time"

	log "github.com/ipfs/go-log/v2"
	"github.com/regnull/easysig"
	"github.com/regnull/easysig/internal/config"
	"github.com/urfave/cli"
)

var logger = log.Logger("easysig-cmd")

var (
	configPath string
	codec      *easysig.Codec
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = path.Base(os.Args[0])
	app.Usage = "CLI for compact recoverable secp256k1 signatures"
	app.Compiled = time.Now()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config,c",
			Destination: &configPath,
			Usage:       "full path to the configuration file",
		},
	}
	app.Before = setup
	app.Commands = []cli.Command{
		SignCommand,
		VerifyCommand,
		RecoverCommand,
	}
	return app
}

// setup reads the configuration, if any, and builds the codec the commands
// share.
func setup(c *cli.Context) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.ReadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to read configuration: [%v]", err)
		}
	}

	for _, subsystem := range []string{"easysig", "easysig-cmd"} {
		if err := log.SetLogLevel(subsystem, cfg.Log.Level); err != nil {
			return fmt.Errorf("failed to set log level [%s]: [%v]", cfg.Log.Level, err)
		}
	}

	codec = easysig.NewCodec(easysig.NewSecp256k1Engine(), cfg.Signing)
	logger.Debugf("signing configuration: %+v", codec.Config())
	return nil
}
