// SPDX-License-Identifier: MIT

// Command lusolve solves dense linear systems stored as YAML files.
//
//	lusolve solve -f system.yaml [--workers N] [--output text|yaml]
//	lusolve factor -f system.yaml
//	lusolve demo [--save demo.yaml]
package main

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/system"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

var (
	systemFile string
	workers    int
	output     string
	savePath   string
)

// main registers the commands and exits with status 1 when one of them fails.
func main() {
	log.SetFlags(0)
	log.SetPrefix("lusolve: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatalln(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lusolve",
		Short:         "solve A·x = b by LU factorization with partial pivoting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve a system file",
		Args:  cobra.NoArgs,
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVarP(&systemFile, "file", "f", "", "system file (yaml)")
	solveCmd.Flags().IntVar(&workers, "workers", lu.DefaultWorkers, "goroutines for the elimination update")
	solveCmd.Flags().StringVar(&output, "output", outputText, "output format: text or yaml")
	_ = solveCmd.MarkFlagRequired("file")

	factorCmd := &cobra.Command{
		Use:   "factor",
		Short: "print L, U and the pivot record of a system file",
		Args:  cobra.NoArgs,
		RunE:  runFactor,
	}
	factorCmd.Flags().StringVarP(&systemFile, "file", "f", "", "system file (yaml)")
	factorCmd.Flags().IntVar(&workers, "workers", lu.DefaultWorkers, "goroutines for the elimination update")
	_ = factorCmd.MarkFlagRequired("file")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "solve the built-in 3×3 sample system",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVar(&output, "output", outputText, "output format: text or yaml")
	demoCmd.Flags().StringVar(&savePath, "save", "", "also write the sample system to this path")

	rootCmd.AddCommand(solveCmd, factorCmd, demoCmd)

	return rootCmd
}

func solveOptions() ([]lu.Option, error) {
	if workers < 1 {
		return nil, errors.Errorf("--workers must be >= 1, got %d", workers)
	}

	return []lu.Option{lu.WithWorkers(workers)}, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	s, err := system.Load(systemFile)
	if err != nil {
		return err
	}

	return solveAndPrint(cmd, s)
}

func runDemo(cmd *cobra.Command, args []string) error {
	s := system.Demo()
	if savePath != "" {
		if err := system.Save(savePath, s); err != nil {
			return err
		}
		log.Printf("sample system written to %s", savePath)
	}

	return solveAndPrint(cmd, s)
}

func solveAndPrint(cmd *cobra.Command, s *system.System) error {
	opts, err := solveOptions()
	if err != nil {
		return err
	}
	r, err := s.Solve(opts...)
	if err != nil {
		return err
	}

	switch output {
	case outputYAML:
		return system.WriteReport(cmd.OutOrStdout(), r)
	case outputText:
		_, err = fmt.Fprintln(cmd.OutOrStdout(), renderReport(r))
		return err
	default:
		return errors.Errorf("unknown output format %q", output)
	}
}

func runFactor(cmd *cobra.Command, args []string) error {
	s, err := system.Load(systemFile)
	if err != nil {
		return err
	}
	opts, err := solveOptions()
	if err != nil {
		return err
	}
	f, err := s.Factorize(opts...)
	if err != nil {
		return err
	}
	out, err := renderFactorization(s.Name, f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

	return err
}
