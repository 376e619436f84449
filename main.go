package main

import (
	"os"

	"github.com/benlindsay/gatsby-site/cli"
	"github.com/benlindsay/gatsby-site/config"
	"github.com/benlindsay/gatsby-site/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	env, err := config.LoadEnvironment()
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("invalid environment")
	}
	if err := logging.LoadLogging(env.IsDevelopment()); err != nil {
		log.Logger.Fatal().Err(err).Msg("failed to load logging configuration")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	config.SetGlobal(cfg)

	if err := cli.Run(config.Global(), os.Args[1:], os.Stdout); err != nil {
		log.Logger.Fatal().Err(err).Msg("command failed")
	}
}
