package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/featforge/treekit/diff"
	"github.com/featforge/treekit/filter"
	"github.com/featforge/treekit/format"
	"github.com/featforge/treekit/tree"
	"github.com/featforge/treekit/walk"
)

// outFormat resolves the output format: -O when given, else the input
// file's own format.
func (cfg *MainConfig) outFormat(inPath string) (format.Format, error) {
	if cfg.OutFmt != "" {
		return format.ByName(cfg.OutFmt)
	}
	return format.ByPath(inPath)
}

func oneFile(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s takes exactly one file", cli.ErrUsage, cmd)
	}
	return args[0], nil
}

func runPrint(cfg *PrintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Print.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile("print", args)
	if err != nil {
		return err
	}
	root, err := format.Load(path)
	if err != nil {
		return err
	}
	if cfg.Filter != "" {
		pred, err := filter.Compile(cfg.Filter)
		if err != nil {
			return err
		}
		for n := range filter.Seq(walk.PreOrder(root), pred) {
			fmt.Fprintln(cc.Out, tree.DisplayName(n))
		}
		return nil
	}
	p := walk.NewPrinter(cc.Out)
	p.Color = cfg.Color
	if _, err := walk.Traverse(root, p); err != nil {
		return err
	}
	return p.Err()
}

func runSort(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile("sort", args)
	if err != nil {
		return err
	}
	root, err := format.Load(path)
	if err != nil {
		return err
	}
	tree.Sort(root)
	return writeTree(cfg.MainConfig, cc, path, root)
}

func runPrune(cfg *PruneConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Prune.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile("prune", args)
	if err != nil {
		return err
	}
	if cfg.Depth < 1 {
		return fmt.Errorf("%w: -depth must be at least 1", cli.ErrUsage)
	}
	root, err := format.Load(path)
	if err != nil {
		return err
	}
	p := &walk.Pruner{DepthLimit: cfg.Depth}
	if _, err := walk.Traverse(root, p); err != nil {
		return err
	}
	if err := p.Err(); err != nil {
		return err
	}
	return writeTree(cfg.MainConfig, cc, path, root)
}

func runStats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile("stats", args)
	if err != nil {
		return err
	}
	root, err := format.Load(path)
	if err != nil {
		return err
	}
	leaves := 0
	for n := range walk.PreOrder(root) {
		if len(n.Children()) == 0 {
			leaves++
		}
	}
	dc := &walk.DepthCounter{}
	if _, err := walk.Traverse(root, dc); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "nodes:  %d\n", walk.CountNodes(root))
	fmt.Fprintf(cc.Out, "leaves: %d\n", leaves)
	fmt.Fprintf(cc.Out, "depth:  %d\n", dc.Depth())
	return nil
}

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := format.Load(args[0])
	if err != nil {
		return err
	}
	b, err := format.Load(args[1])
	if err != nil {
		return err
	}
	if cfg.Color {
		fmt.Fprint(cc.Out, diff.Pretty(a, b))
		return nil
	}
	fmt.Fprint(cc.Out, diff.Diff(a, b))
	return nil
}

func runConvert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := oneFile("convert", args)
	if err != nil {
		return err
	}
	if cfg.OutFmt == "" {
		return fmt.Errorf("%w: convert requires -O", cli.ErrUsage)
	}
	root, err := format.Load(path)
	if err != nil {
		return err
	}
	return writeTree(cfg.MainConfig, cc, path, root)
}

func writeTree(cfg *MainConfig, cc *cli.Context, inPath string, root *tree.Labeled) error {
	f, err := cfg.outFormat(inPath)
	if err != nil {
		return err
	}
	data, err := f.Serialize(root)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(data)
	return err
}
