package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cardvault",
	Short: "Business card OCR vault server",
	Long: `cardvault stores business cards: it extracts text from uploaded card
images and keeps the text alongside the original image in Postgres.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
