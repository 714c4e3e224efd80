package main

import (
	"fmt"
	"strings"

	"massiohealth/internal/bmi"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	var (
		plain bool
		style string
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the BMI reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := referenceMarkdown()
			if plain {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
			if style == "" {
				opts = append(opts, glamour.WithAutoStyle())
			} else {
				opts = append(opts, glamour.WithStandardStyle(style))
			}

			r, err := glamour.NewTermRenderer(opts...)
			if err != nil {
				return fmt.Errorf("create renderer: %w", err)
			}

			out, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("render reference table: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown")
	cmd.Flags().StringVar(&style, "style", "", "glamour style (dark, light, notty, ascii); auto-detected when empty")

	return cmd
}

func referenceMarkdown() string {
	var b strings.Builder

	b.WriteString("# BMI Categories\n\n")
	b.WriteString("| Category | BMI |\n")
	b.WriteString("|---|---|\n")
	for _, band := range bmi.Reference() {
		fmt.Fprintf(&b, "| %s | %s |\n", band.Label, band.Range)
	}
	b.WriteString("\n")
	for _, band := range bmi.Reference() {
		fmt.Fprintf(&b, "- **%s**: %s\n", band.Label, band.Description)
	}
	b.WriteString("\nBMI = weight (kg) / height (m)². Boundary values belong to the higher band.\n")

	return b.String()
}
