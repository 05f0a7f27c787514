package presenter

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"
)

//go:embed templates/page.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/page.html")) //nolint:gochecknoglobals

// Page is the data of the search page. Failed is set when the last search could
// not be completed.
type Page struct {
	Keyword string
	Cards   []Card
	Failed  bool
}

func RenderHTML(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("pageTemplate.Execute: %w", err)
	}

	return nil
}

// RenderText prints the cards as a table, the cheapest ones marked with '*'.
func RenderText(w io.Writer, cards []Card) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd

	if _, err := fmt.Fprintln(tw, "\tPLATFORM\tPRICE\tNAME\tURL"); err != nil {
		return fmt.Errorf("fmt.Fprintln: %w", err)
	}

	for _, card := range cards {
		mark := ""
		if card.Cheapest {
			mark = "*"
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", mark, card.Platform, card.PriceLabel, card.Name, card.URL); err != nil {
			return fmt.Errorf("fmt.Fprintf: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tw.Flush: %w", err)
	}

	return nil
}
