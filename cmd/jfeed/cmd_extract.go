// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/streamyjson/jfeed"
	"github.com/streamyjson/jfeed/query"
)

func newExtractCmd() *cobra.Command {
	var (
		strict    bool
		chunkSize int
		every     bool
		path      []string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Incrementally parse a string/object JSON document",
		Long: `Incrementally parse a JSON document limited to string and object values.

If a file is provided, it is read in chunks; otherwise input is read from
stdin, which makes the command usable at the end of a streaming pipeline.
The best-effort document parsed from the input is printed as JSON, even if
the input is truncated mid-value.

By default input that is not meaningful at the current parse position is
dropped, so a document can be extracted from surrounding prose. Use --strict
to fail on the first unexpected byte instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := buildLogger(verbose).Named("extract")
			defer log.Sync()

			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			p := jfeed.New()
			p.SetStrict(strict)

			buf := make([]byte, chunkSize)
			var chunks int
			for {
				n, rerr := in.Read(buf)
				if n > 0 {
					chunks++
					if err := p.Consume(buf[:n]); err != nil {
						log.Error("syntax error",
							zap.Error(err),
							zap.Int("chunk", chunks))
						return err
					}
					if every {
						fmt.Println(p.Get().JSON())
					}
				}
				if rerr == io.EOF {
					break
				} else if rerr != nil {
					return fmt.Errorf("read input: %w", rerr)
				}
			}
			log.Debug("input consumed",
				zap.Int("chunks", chunks),
				zap.Stringer("state", p.State()))

			if len(path) > 0 {
				v, err := query.Eval(p.Get(), query.Path(path...))
				if err != nil {
					return fmt.Errorf("path: %w", err)
				}
				fmt.Println(v.JSON())
				return nil
			}
			if !every {
				fmt.Println(p.Get().JSON())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unexpected input instead of dropping it")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 4096, "Read the input in chunks of this many bytes")
	cmd.Flags().BoolVar(&every, "every", false, "Print the document snapshot after every chunk")
	cmd.Flags().StringSliceVar(&path, "path", nil, "Print only the value at this sequence of object keys")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

func buildLogger(verbose bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	if !verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	log, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return log
}
