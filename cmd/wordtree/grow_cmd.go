package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/wordtree"
	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/metrics"
	"github.com/pbanos/wordtree/tree"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a corpus and test it",
		Long: `Grow a tree from the training split of a corpus and report its accuracy
on the training and testing splits.`,
		Run: func(cmd *cobra.Command, args []string) {
			code, err := config.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				os.Exit(code)
			}
		},
	}
	flags := cmd.Flags()
	flags.StringP("input", "i", ".", "path to a text corpus directory or YAML manifest, or an SQLite3 (.db) file, or a PostgreSQL, MongoDB or redis URL with the corpus")
	flags.IntP("max-nodes", "n", 100, "maximum number of decision nodes in the tree")
	flags.StringP("strategy", "s", wordtree.BestFirst.String(), "growth strategy: best-first or recursive")
	flags.Bool("print-tree", false, "print the grown tree")
	flags.Bool("progress", true, "show a progress bar while growing the tree")
	flags.String("metrics-file", "", "path to a file to write metrics to in Prometheus text format")
	for _, name := range []string{"input", "max-nodes", "strategy", "print-tree", "progress", "metrics-file"} {
		_ = config.v.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}

func (gcc *growCmdConfig) options() (wordtree.Options, error) {
	s, err := wordtree.ParseStrategy(gcc.v.GetString("strategy"))
	if err != nil {
		return wordtree.Options{}, err
	}
	maxNodes := gcc.v.GetInt("max-nodes")
	if maxNodes < 1 {
		return wordtree.Options{}, fmt.Errorf("%w: max-nodes must be at least 1, got %d", wordtree.ErrInvalidNodeBudget, maxNodes)
	}
	return wordtree.Options{MaxNodes: maxNodes, Strategy: s}, nil
}

/*
run grows and tests a tree, writing the report to stdout and the progress bar
to stderr. On failure it returns the exit code for the failed step.
*/
func (gcc *growCmdConfig) run(ctx context.Context, stdout, stderr io.Writer) (int, error) {
	opts, err := gcc.options()
	if err != nil {
		return 1, err
	}
	ctx = gcc.Context(ctx)
	c, err := gcc.loadCorpus(ctx, gcc.v.GetString("input"))
	if err != nil {
		return 2, err
	}
	ds, err := c.Training.Dataset()
	if err != nil {
		return 3, fmt.Errorf("preparing training split: %v", err)
	}
	if gcc.v.GetBool("progress") {
		bar := progressbar.NewOptions(opts.MaxNodes,
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Adding nodes"),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(stderr)
			}),
		)
		opts.Progress = func(done, total int) {
			_ = bar.Set(done)
		}
		defer bar.Finish()
	}
	gcc.Logf("Growing %s tree with up to %d nodes from %d documents and %d words...", opts.Strategy, opts.MaxNodes, ds.Count(), ds.Width())
	t, err := wordtree.Grow(ctx, ds, opts)
	if err != nil {
		return 4, fmt.Errorf("growing the tree: %v", err)
	}
	gcc.Logf("Done")
	if gcc.v.GetBool("print-tree") {
		fmt.Fprint(stdout, t.Format(c.Vocabulary))
	}
	if err = report(stdout, t, c); err != nil {
		return 5, err
	}
	if path := gcc.v.GetString("metrics-file"); path != "" {
		if err = metrics.WriteFile(path); err != nil {
			return 6, fmt.Errorf("writing metrics: %v", err)
		}
	}
	return 0, nil
}

/*
report writes the accuracy of the tree on each non-empty split of the corpus
to w and records it on the accuracy metric.
*/
func report(w io.Writer, t *tree.Tree, c *corpus.Corpus) error {
	titles := map[string]string{corpus.Training: "Training accuracy", corpus.Testing: "Testing accuracy"}
	for _, name := range corpus.Splits {
		split, _ := c.Split(name)
		if split.Count() == 0 {
			continue
		}
		accuracy, err := t.Evaluate(split.Documents, split.Labels)
		if err != nil {
			return fmt.Errorf("testing tree against %s split: %v", name, err)
		}
		metrics.Accuracy.WithLabelValues(name).Set(accuracy)
		fmt.Fprintf(w, "%s: %f\n", titles[name], accuracy)
	}
	return nil
}
