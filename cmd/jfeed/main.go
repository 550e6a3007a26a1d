// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

// Program jfeed extracts JSON structure from streamed text.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jfeed",
		Short: "Extract JSON structure from streamed text",
	}

	rootCmd.AddCommand(newExtractCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
