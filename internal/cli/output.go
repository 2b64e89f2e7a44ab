package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rshade/pagerkit/internal/config"
	"github.com/rshade/pagerkit/internal/pager"
	"github.com/rshade/pagerkit/internal/pagination"
)

// ViewOutput is the machine-readable form of a derived view.
type ViewOutput struct {
	pagination.DerivedView `yaml:",inline"`

	RangeText string `json:"range_text" yaml:"range_text"`
	PageText  string `json:"page_text"  yaml:"page_text"`
}

// newViewOutput renders view with the separator of variant.
func newViewOutput(view pagination.DerivedView, variant pager.Variant) ViewOutput {
	cfg := pager.Config{Variant: variant}
	return ViewOutput{
		DerivedView: view,
		RangeText:   pagination.RangeText(view, cfg.Separator()),
		PageText:    pagination.PageText(view),
	}
}

// writeView writes out in the given format.
func writeView(w io.Writer, format string, out ViewOutput) error {
	if format == config.FormatTable {
		return writeViewTable(w, out)
	}
	return writeStructured(w, format, out)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q: must be table, json or yaml", format)
	}
}

func writeViewTable(w io.Writer, out ViewOutput) error {
	const tabPadding = 2
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	rows := [][2]string{
		{"Range", out.RangeText},
		{"Page", out.PageText},
		{"Rows per page", strconv.Itoa(out.RowsPerPage)},
		{"Total items", strconv.Itoa(out.TotalItems)},
		{"Total pages", strconv.Itoa(out.TotalPages)},
		{"First page", strconv.FormatBool(out.IsFirstPage)},
		{"Last page", strconv.FormatBool(out.IsLastPage)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
