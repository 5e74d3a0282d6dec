package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blukai/vlq"
	"github.com/blukai/vlq/internal/vlqcache"
	"github.com/hashicorp/go-multierror"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

func newRootCmd(cache *vlqcache.Cache, logger *log.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vlq",
		Short: "Encode and decode base64 vlq (source map) strings",
		Long: `vlq encodes signed 32-bit integers into base64 vlq strings and back.

Environment:
  VLQ_CACHE_SIZE  number of decoded inputs to remember (default 1024)
  VLQ_LOG_LEVEL   trace|debug|info|warn|error (default info)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(cache, logger),
		newMappingsCmd(logger),
	)

	return rootCmd
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <int>...",
		Short: "Encode integers into a single vlq string",
		// NOTE(blukai): otherwise negative numbers are taken for
		// shorthand flags
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, len(args))
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("could not parse int %q: %w", arg, err)
				}
				values[i] = n
			}

			encoded, err := vlq.EncodeInts(values)
			if err != nil {
				return fmt.Errorf("could not encode: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return err
		},
	}
}

func newDecodeCmd(cache *vlqcache.Cache, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [vlq]...",
		Short: "Decode vlq strings (arguments, or stdin lines if there are none)",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("could not read stdin: %w", err)
				}
				inputs = lines
			}

			var errs *multierror.Error
			for _, input := range inputs {
				values, err := cache.Decode(input)
				if err != nil {
					logger.Error().
						Str("input", input).
						Msgf("could not decode: %v", err)

					errs = multierror.Append(errs, fmt.Errorf("%q: %w", input, err))
					continue
				}

				if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatValues(values)); err != nil {
					return err
				}
			}
			logger.Debug().
				Int("inputs", len(inputs)).
				Int("cached", cache.Len()).
				Msg("decoded")

			return errs.ErrorOrNil()
		},
	}
}

func newMappingsCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "mappings [mappings]",
		Short: "Decode a source map mappings string (argument, or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("could not read stdin: %w", err)
				}
				input = strings.TrimSpace(string(data))
			}

			lines, err := vlq.DecodeMappings(input)
			if err != nil {
				return fmt.Errorf("could not decode mappings: %w", err)
			}
			logger.Debug().
				Int("lines", len(lines)).
				Msg("decoded mappings")

			out := cmd.OutOrStdout()
			for _, segments := range lines {
				formatted := make([]string, len(segments))
				for i, values := range segments {
					formatted[i] = formatValues(values)
				}
				if _, err := fmt.Fprintln(out, strings.Join(formatted, " | ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func formatValues(values []int32) string {
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(formatted, ",")
}
