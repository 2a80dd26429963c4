package main

import (
	"fmt"
	"os"

	"github.com/jcsullivan216/dowdirectory/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dowdirectory",
	Short: "Extract personnel records from DoW acquisition directory dumps",
	Long: `dowdirectory converts the per-page text of the Department of War
acquisition directory into structured personnel records and organizational
relationships. It reads page dumps (PDF, text, markdown, HTML, docx, or CSV),
tracks the Service > PAE > CPE > program-office hierarchy across pages, and
writes the results as CSV or XLSX.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("dowdirectory %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
