// Command datodump is a thin CLI around the reader and dump packages: it
// pretty-prints DATO files and wraps raw DATO buffers in a container
// envelope.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dato-io/dato/container"
	"github.com/dato-io/dato/dump"
	"github.com/dato-io/dato/reader"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "datodump",
		Short: "Inspect and pack DATO binary container files.",
	}

	rootCmd.AddCommand(newDumpCmd(), newPackCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Pretty-print a DATO file, unwrapping a container envelope if present.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			if container.LooksLikeEnvelope(data) {
				log.Printf("datodump: %s looks like a container envelope, unwrapping", args[0])
				data, err = container.Unpack(data)
				if err != nil {
					return fmt.Errorf("unwrapping envelope: %w", err)
				}
			}

			r, err := reader.NewAdaptive(data)
			if err != nil {
				return fmt.Errorf("opening DATO buffer: %w", err)
			}

			p := dump.New(cmd.OutOrStdout())
			if err := r.GetRoot().Iterate(p); err != nil {
				return fmt.Errorf("walking value tree: %w", err)
			}
			if err := p.Err(); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			return nil
		},
	}
}

func newPackCmd() *cobra.Command {
	var codecName string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "pack <file>",
		Short: "Wrap a raw DATO file in a compressed, checksummed container envelope.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			codecType, err := parseCodecName(codecName)
			if err != nil {
				return err
			}

			packed, err := container.Pack(data, codecType)
			if err != nil {
				return fmt.Errorf("packing %s: %w", args[0], err)
			}

			dest := outputPath
			if dest == "" {
				dest = args[0] + ".dtc"
			}

			if err := os.WriteFile(dest, packed, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}

			log.Printf("datodump: wrote %s (%d bytes, codec %s)", dest, len(packed), codecType)

			return nil
		},
	}

	cmd.Flags().StringVarP(&codecName, "codec", "c", "zstd", "compression codec: none, zstd, s2, lz4")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default: <file>.dtc)")

	return cmd
}

func parseCodecName(name string) (container.CompressionType, error) {
	switch name {
	case "none":
		return container.CompressionNone, nil
	case "zstd":
		return container.CompressionZstd, nil
	case "s2":
		return container.CompressionS2, nil
	case "lz4":
		return container.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("datodump: unknown codec %q", name)
	}
}
