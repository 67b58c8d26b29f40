// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Command bigcalc is a decimal arbitrary-precision integer calculator
// built on the bigint package.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mshafiee/bigint"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newEvalCmd(), newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("bigcalc failed")
		os.Exit(1)
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate a single expression and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := evalExpr(args[0])
			if err != nil {
				return err
			}
			fmt.Println(result.String())
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read expressions from stdin, one per line, until EOF",
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				result, err := evalExpr(line)
				if err != nil {
					log.Debug().Str("expr", line).Err(err).Msg("evaluation failed")
					fmt.Printf("error: %v\n", err)
					continue
				}
				fmt.Println(result.String())
			}
			return scanner.Err()
		},
	}
}

// evalExpr evaluates a single binary expression of the form
// "<lhs> <op> <rhs>", where op is one of + - * / %, and lhs/rhs are
// decimal integer literals.
func evalExpr(expr string) (*bigint.BigInt, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return nil, fmt.Errorf("bigcalc: expected \"<lhs> <op> <rhs>\", got %q", expr)
	}

	lhs, err := bigint.ParseBigInt(fields[0])
	if err != nil {
		return nil, err
	}
	rhs, err := bigint.ParseBigInt(fields[2])
	if err != nil {
		return nil, err
	}

	z := new(bigint.BigInt)
	log.Debug().Str("lhs", lhs.String()).Str("op", fields[1]).Str("rhs", rhs.String()).Msg("evaluating")

	switch fields[1] {
	case "+":
		return z.Add(lhs, rhs), nil
	case "-":
		return z.Sub(lhs, rhs), nil
	case "*":
		return z.Mul(lhs, rhs), nil
	case "/":
		return z.Quo(lhs, rhs)
	case "%":
		return z.Rem(lhs, rhs)
	default:
		return nil, fmt.Errorf("bigcalc: unknown operator %q", fields[1])
	}
}
