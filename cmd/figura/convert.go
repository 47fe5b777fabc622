package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jclermont/figura"
	"github.com/jclermont/figura/model"
	"github.com/jclermont/figura/ncj"
)

func convertCmd() *cobra.Command {
	var out string
	var assetsDir string
	var configPath string
	var maxTitleLen int
	var maxGapParas int
	var pageWidthRatio float64
	var debug bool

	cmd := &cobra.Command{
		Use:   "convert <input.docx>",
		Short: "Convert a DOCX file to NCJ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				// Explicit flags win over the config file.
				applyConfig(cmd, cfg, &maxTitleLen, &maxGapParas, &pageWidthRatio, &assetsDir, &debug)
			}

			conv := figura.Open(input).
				MaxTitleLen(maxTitleLen).
				MaxGapParas(maxGapParas).
				PageWidthRatio(pageWidthRatio)
			if assetsDir != "" {
				conv = conv.ExtractAssets(assetsDir)
			}
			if debug {
				conv = conv.Debug()
			}

			doc, warnings, err := conv.Document()
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}

			if out == "-" {
				if err := ncj.Encode(cmd.OutOrStdout(), doc); err != nil {
					return err
				}
			} else {
				data, err := ncj.Marshal(doc)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Converted %s -> %s\n", input, out)
			}

			printSummary(cmd, doc)
			if debug {
				for _, line := range doc.Report.Debug {
					fmt.Fprintln(cmd.OutOrStdout(), " ", line)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "content.json", "output JSON file, or - for stdout")
	cmd.Flags().StringVar(&assetsDir, "assets-dir", "assets/media", "directory to extract image assets into")
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML config file")
	cmd.Flags().IntVar(&maxTitleLen, "max-title-len", 45, "maximum character count for figure titles")
	cmd.Flags().IntVar(&maxGapParas, "max-gap-paras", 1, "maximum paragraph gap for column grouping")
	cmd.Flags().Float64Var(&pageWidthRatio, "page-width-ratio", 0.95, "page width fraction for row layout detection")
	cmd.Flags().BoolVar(&debug, "debug", false, "include grouping reasoning in the output report")
	return cmd
}

// printSummary prints figure and group counts after a conversion.
func printSummary(cmd *cobra.Command, doc *model.ContentDoc) {
	figures := 0
	groups := make(map[string]int) // group ID -> length
	for _, b := range doc.Blocks {
		if b.Type != "figure" {
			continue
		}
		figures++
		groups[b.GroupID] = b.GroupLen
	}

	multi := 0
	for _, n := range groups {
		if n > 1 {
			multi++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Summary: %d figures, %d groups, %d multi-figure groups\n",
		figures, len(groups), multi)
}
