package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='render output with color'"`
	OutFmt string `cli:"name=O aliases=ofmt desc='output format: json, yaml, xml (default: input format)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "treekit").
		WithSynopsis("treekit [opts] command [opts]").
		WithDescription("treekit is a tool for inspecting and transforming tree files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return treekitMain(cfg, cc, args)
		}).
		WithSubs(
			PrintCommand(cfg),
			SortCommand(cfg),
			PruneCommand(cfg),
			StatsCommand(cfg),
			DiffCommand(cfg),
			ConvertCommand(cfg),
			AgentCommand(cfg))
}

func treekitMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type PrintConfig struct {
	*MainConfig
	Print  *cli.Command
	Filter string `cli:"name=filter desc='only print nodes matching this expression'"`
}

func PrintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PrintConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Print, "print").
		WithAliases("p").
		WithSynopsis("print [-filter <expr>] <file>").
		WithDescription("Print a tree file as an indented outline").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPrint(cfg, cc, args)
		})
}

type SortConfig struct {
	*MainConfig
	Sort *cli.Command
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sort, "sort").
		WithSynopsis("sort <file>").
		WithDescription("Sort all child lists into canonical order").
		WithRun(func(cc *cli.Context, args []string) error {
			return runSort(cfg, cc, args)
		})
}

type PruneConfig struct {
	*MainConfig
	Prune *cli.Command
	Depth int `cli:"name=depth desc='number of levels to keep'"`
}

func PruneCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PruneConfig{MainConfig: mainCfg, Depth: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Prune, "prune").
		WithSynopsis("prune -depth <n> <file>").
		WithDescription("Cut a tree down to the given number of levels").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPrune(cfg, cc, args)
		})
}

type StatsConfig struct {
	*MainConfig
	Stats *cli.Command
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithSynopsis("stats <file>").
		WithDescription("Report node count, leaf count, and depth of a tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return runStats(cfg, cc, args)
		})
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("Diff the canonical forms of two trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
}

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c").
		WithSynopsis("convert -O <format> <file>").
		WithDescription("Re-encode a tree file in another format").
		WithRun(func(cc *cli.Context, args []string) error {
			return runConvert(cfg, cc, args)
		})
}
