package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/cli"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Create processor
	proc := processor.NewProcessor(flags)

	// Handle batch processing
	if flags.BatchFile != "" {
		// Process batch file
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	} else if len(args) > 0 {
		// Process single term
		if err := proc.ProcessSingleTerm(args[0]); err != nil {
			return err
		}
	} else {
		return cmd.Help()
	}

	fmt.Printf("\nDone! Results saved to: %s\n", flags.OutputDir)
	return nil
}
