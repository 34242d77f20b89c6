package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"

	"github.com/huangsam/examtwin/internal/contract"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v2"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeYAML encodes data using its yaml struct tags.
func writeYAML(w io.Writer, data any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// markdownRenderer converts the markdown views to HTML. GFM is needed for tables.
var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// writeHTML renders a markdown document as a standalone HTML page.
func writeHTML(w io.Writer, title, markdown string) error {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(markdown), &body); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(title), body.String())
	return err
}

// writeMarkdownOrHTML writes a markdown view as-is or rendered to HTML.
func writeMarkdownOrHTML(outputFile string, asHTML bool, title string, build func() string) error {
	if asHTML {
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeHTML(w, title, build())
		}, "Wrote HTML")
	}
	return writeWithFile(outputFile, func(w io.Writer) error {
		_, err := io.WriteString(w, build())
		return err
	}, "Wrote Markdown")
}

// mdEscape keeps table cells from breaking a markdown row.
func mdEscape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		if r == '|' {
			buf.WriteString(`\|`)
			continue
		}
		buf.WriteRune(r)
	}
	return buf.String()
}
