package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func importCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy a corpus between backends",
		Long: `Load a corpus from the input location and store it on the output location,
replacing any corpus stored there.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := rootConfig.importCorpus(cmd); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringP("input", "i", ".", "location of the corpus to import (see grow)")
	cmd.Flags().StringP("output", "o", "", "location to store the corpus on: a directory, an SQLite3 (.db) file, or a PostgreSQL, MongoDB or redis URL (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (rcc *rootCmdConfig) importCorpus(cmd *cobra.Command) error {
	ctx := rcc.Context(cmd.Context())
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	if input == output {
		return fmt.Errorf("input and output are the same location %s", output)
	}
	c, err := rcc.loadCorpus(ctx, input)
	if err != nil {
		return err
	}
	b, err := rcc.openBackend(output)
	if err != nil {
		return err
	}
	defer b.close()
	rcc.Logf("Writing corpus to %s...", output)
	if err = rcc.write(ctx, b, c); err != nil {
		return fmt.Errorf("writing corpus to %s: %v", output, err)
	}
	rcc.Logf("Done")
	return nil
}
