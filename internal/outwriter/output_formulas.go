package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/huangsam/examtwin/schema"
)

// PrintFormulas displays the definitions of all derived indicators.
// This is a static display that does not depend on the inputs.
func PrintFormulas(model *schema.FormulasRenderModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, model)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFormulasCSV(w, model)
		}, "Wrote CSV")
	case schema.MarkdownOut, schema.HTMLOut:
		return writeMarkdownOrHTML(cfg.OutputFile, cfg.Output == schema.HTMLOut, model.Title, func() string {
			return buildFormulasMarkdown(model)
		})
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available for the report command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFormulasText(w, model)
		}, "Wrote text")
	}
}

// writeFormulasText displays formulas in human-readable text format.
func writeFormulasText(w io.Writer, model *schema.FormulasRenderModel) error {
	if _, err := fmt.Fprintf(w, "🧮 %s\n%s\n\n%s\n%s\n\n", model.Title, strings.Repeat("=", len(model.Title)+3), model.Description, model.Rounding); err != nil {
		return err
	}
	for _, def := range model.Definitions {
		if _, err := fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(def.Name), def.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: %s\n", def.Formula); err != nil {
			return err
		}
		for _, f := range def.Factors {
			if _, err := fmt.Fprintf(w, "   - %s (weight %.2f): %s\n", f.Name, f.Weight, f.Normalizer); err != nil {
				return err
			}
		}
		for _, rule := range def.Rules {
			if _, err := fmt.Fprintf(w, "   - %s\n", rule); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeFormulasCSV writes one row per definition.
func writeFormulasCSV(w io.Writer, model *schema.FormulasRenderModel) error {
	return writeCSVWithHeader(w, []string{"Name", "Purpose", "Formula", "Factors", "Rules"}, func(cw *csv.Writer) error {
		for _, def := range model.Definitions {
			factors := make([]string, 0, len(def.Factors))
			for _, f := range def.Factors {
				factors = append(factors, fmt.Sprintf("%s=%.2f", f.Name, f.Weight))
			}
			record := []string{def.Name, def.Purpose, def.Formula, strings.Join(factors, "|"), strings.Join(def.Rules, "|")}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func buildFormulasMarkdown(model *schema.FormulasRenderModel) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# 🧮 %s\n\n%s\n\n%s\n\n", model.Title, model.Description, model.Rounding)
	for _, def := range model.Definitions {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n`%s`\n\n", def.Name, def.Purpose, def.Formula)
		if len(def.Factors) > 0 {
			sb.WriteString("| Factor | Weight | Normalized as |\n|---|---:|---|\n")
			for _, f := range def.Factors {
				fmt.Fprintf(&sb, "| %s | %.2f | %s |\n", mdEscape(f.Name), f.Weight, mdEscape(f.Normalizer))
			}
			sb.WriteString("\n")
		}
		for _, rule := range def.Rules {
			fmt.Fprintf(&sb, "- %s\n", rule)
		}
		if len(def.Rules) > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
