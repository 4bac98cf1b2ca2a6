package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/jfinkels/birkhoff"
	"github.com/jfinkels/birkhoff/decompose"
	"github.com/jfinkels/birkhoff/matching"
	"github.com/jfinkels/birkhoff/matrix"
)

var (
	fileIn string
	trace  bool
	check  bool

	rootCmd = &cobra.Command{
		Use:           "birkhoff",
		Short:         "Birkhoff–von Neumann decomposition of doubly stochastic matrices.",
		Long:          `Decompose a doubly stochastic matrix into a convex combination of permutation matrices, one (coefficient, permutation) pair per line of output, via maximum bipartite matching on the matrix support.`,
		Version:       birkhoff.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	decomposeCmd = &cobra.Command{
		Use:   "decompose",
		Short: "Read a matrix from a file (or stdin) and print its decomposition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := readMatrix(fileIn)
			if err != nil {
				return err
			}
			return runDecompose(cmd.OutOrStdout(), m)
		},
	}
)

func init() {
	viper.SetDefault("epsilon", decompose.DefaultEpsilon)
}

// Execute wires the command tree and runs it.
func Execute() error {
	rootCmd.AddCommand(decomposeCmd, releaseCmd)

	decomposeCmd.Flags().StringVarP(&fileIn, "input", "i", "", "Input matrix file; '-' or empty reads stdin")
	decomposeCmd.Flags().BoolVar(&trace, "trace", false, "Print each intermediate pattern matrix and matching")
	decomposeCmd.Flags().BoolVar(&check, "check", false, "Validate row/column sums before decomposing")
	decomposeCmd.Flags().Float64("epsilon", decompose.DefaultEpsilon, "Zero tolerance for support detection and clamping")
	_ = viper.BindPFlag("epsilon", decomposeCmd.Flags().Lookup("epsilon"))

	releaseCmd.Flags().StringVar(&versionFile, "version-file", "version.go", "File holding the Version constant")

	return rootCmd.Execute()
}

// readMatrix parses a whitespace- or comma-separated matrix from path,
// or from stdin when path is empty or "-". Blank lines and lines starting
// with '#' are skipped.
func readMatrix(path string) (*matrix.Dense, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, xerrors.Errorf("open matrix file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var rows [][]float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		row := make([]float64, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, xerrors.Errorf("parse entry %q on line %d: %w", field, len(rows)+1, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Errorf("read matrix: %w", err)
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, xerrors.Errorf("build matrix: %w", err)
	}
	return m, nil
}

// runDecompose decomposes m and writes the terms to w, optionally tracing
// every intermediate pattern and matching.
func runDecompose(w io.Writer, m *matrix.Dense) error {
	opts := []decompose.Option{decompose.WithEpsilon(viper.GetFloat64("epsilon"))}
	if check {
		opts = append(opts, decompose.WithStochasticCheck())
	}
	if trace {
		opts = append(opts,
			decompose.WithOnPattern(func(it int, pattern *matrix.Dense) {
				fmt.Fprintf(w, "iteration %d pattern:\n%s", it, pattern)
			}),
			decompose.WithOnMatching(func(it int, matched matching.Matching) {
				fmt.Fprintf(w, "iteration %d matching: %v\n", it, matched)
			}),
		)
	}

	terms, err := decompose.Decompose(m, opts...)
	if err != nil {
		return xerrors.Errorf("decompose: %w", err)
	}

	for i, term := range terms {
		fmt.Fprintf(w, "term %d: coefficient %g\n%s", i, term.Coefficient, term.Permutation)
	}

	sum, err := decompose.Reconstruct(terms, m.Rows())
	if err != nil {
		return xerrors.Errorf("reconstruct: %w", err)
	}
	fmt.Fprintf(w, "terms: %d, reconstruction exact within %g: %t\n",
		len(terms), decompose.DefaultEpsilon, m.Equal(sum, decompose.DefaultEpsilon))
	return nil
}
