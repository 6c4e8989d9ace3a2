// Package catalogfmt prints catalog contents for the CLI.
package catalogfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/salon/internal/domain"
)

// ServiceRow is one priced service for display purposes.
type ServiceRow struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Name     string `json:"name"`
	Price    string `json:"price"`
}

// Rows flattens the catalog's services in page order.
func Rows(cat *domain.Catalog) []ServiceRow {
	var rows []ServiceRow
	for _, c := range cat.Services {
		for _, item := range c.Items {
			rows = append(rows, ServiceRow{Category: c.ID, Label: c.Label, Name: item.Name, Price: item.Price})
		}
	}
	return rows
}

// ServicesTable writes the service menu as an aligned table.
func ServicesTable(w io.Writer, cat *domain.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "CATEGORY\tSERVICE\tPRICE")
	fmt.Fprintln(tw, "--------\t-------\t-----")
	for _, r := range Rows(cat) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Label, r.Name, r.Price)
	}
	return tw.Flush()
}

// ServicesJSON writes the service menu as an indented JSON array.
func ServicesJSON(w io.Writer, cat *domain.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Rows(cat))
}
