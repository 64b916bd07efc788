// Command arcoder is the reference CLI driver for package arcoder (spec
// §6): it reads an input file, encodes or decodes it, and writes the
// result to an output file. Everything here — flag parsing, file I/O,
// the entropy/ratio diagnostics — is an external collaborator outside
// the coder core's contract (spec §1).
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcinwilkdev/arcoder"
	"github.com/marcinwilkdev/arcoder/internal/stats"
)

const defaultAlphabetSize = 256

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "arcoder:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		input     string
		output    string
		decode    bool
		schemeStr string
	)

	cmd := &cobra.Command{
		Use:   "arcoder",
		Short: "Adaptive arithmetic coder for byte streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			if output == "" {
				return fmt.Errorf("--output is required")
			}
			scheme, err := arcoder.ParseScheme(schemeStr)
			if err != nil {
				return err
			}
			if decode {
				return runDecode(input, output, scheme)
			}
			return runEncode(input, output, scheme)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "decode input instead of encoding it")
	cmd.Flags().StringVar(&schemeStr, "scheme", "incremental", "model update policy: incremental or blockwise")

	return cmd
}

func runEncode(input, output string, scheme arcoder.Scheme) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if counts, err := stats.CountSymbols(ctx, bytes.NewReader(data), 0); err == nil {
		fmt.Printf("Source entropy: %.4f bits/symbol\n", stats.ShannonEntropy(counts))
	}

	start := time.Now()
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := arcoder.EncodeFile(f, data, defaultAlphabetSize, scheme); err != nil {
		return err
	}
	fmt.Printf("Compressing time: %s\n", time.Since(start))

	compressed, err := os.Stat(output)
	if err == nil {
		ratio := stats.CompressionRatio(len(data), int(compressed.Size()))
		fmt.Printf("Compression ratio: %.4f\n", ratio)
		fmt.Printf("Average symbol encoding length: %.4f\n", stats.AverageSymbolBits(ratio))
	}

	return nil
}

func runDecode(input, output string, scheme arcoder.Scheme) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	defer f.Close()

	decoded, err := arcoder.DecodeFile(f, defaultAlphabetSize, scheme)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, decoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}
