package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

type AgentConfig struct {
	*MainConfig
	Agent *cli.Command
}

func AgentCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AgentConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Agent, "agent").
		WithSynopsis("agent").
		WithDescription("Run idle with a gops diagnostics agent, for profiling treekit under load generators").
		WithRun(func(cc *cli.Context, args []string) error {
			return runAgent(cfg, cc, args)
		})
}

func runAgent(cfg *AgentConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Agent.Parse(cc, args); err != nil {
		return err
	}
	if err := agent.Listen(agent.Options{}); err != nil {
		return fmt.Errorf("gops agent failed: %w", err)
	}
	defer agent.Close()
	fmt.Fprintln(cc.Out, "gops agent running; interrupt to stop")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
