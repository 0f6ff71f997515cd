package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"

	"github.com/mickeyl/lanagent/internal/runner"
)

func main() {
	options := runner.ParseOptions()

	agent, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("could not create runner: %s\n", err)
	}

	if err := agent.Run(); err != nil {
		gologger.Fatal().Msgf("could not run agent: %s\n", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	gologger.Info().Msg("shutting down...")
	agent.Close()
}
