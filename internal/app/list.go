package app

import (
	"fmt"
	"text/tabwriter"
)

// List writes one line per library document: its kind and VLNV.
func (a *App) List() error {
	tw := tabwriter.NewWriter(a.outW, 0, 0, 2, ' ', 0)
	for _, doc := range a.library.All(a.ctx) {
		fmt.Fprintf(tw, "%s\t%s\n", doc.Kind(), doc.Identity())
	}
	return tw.Flush()
}
