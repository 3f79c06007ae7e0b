package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/1129kyoto/sitecontent/internal/config"
	"github.com/1129kyoto/sitecontent/internal/entities"
)

// llms.txt is always rendered in English.
const llmsLang = entities.LangEN

// BuildLLMsText renders the llms.txt document for the production site.
func BuildLLMsText(site *entities.SiteData, recommended, collaboration []entities.MenuItem) string {
	return NewLLMsTextExporter(config.DefaultSiteURL).Build(entities.Content{
		Site:          site,
		Recommended:   recommended,
		Collaboration: collaboration,
	})
}

type LLMsTextExporter struct {
	SiteURL string
}

func NewLLMsTextExporter(siteURL string) *LLMsTextExporter {
	if siteURL == "" {
		siteURL = config.DefaultSiteURL
	}
	return &LLMsTextExporter{SiteURL: strings.TrimSuffix(siteURL, "/")}
}

func (e *LLMsTextExporter) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (e *LLMsTextExporter) Export(w io.Writer, content entities.Content) (ExportResult, error) {
	n, err := io.WriteString(w, e.Build(content))
	if err != nil {
		return ExportResult{BytesWritten: n}, fmt.Errorf("failed to write llms.txt: %w", err)
	}
	return ExportResult{MenuItemsExported: menuItemCount(content), BytesWritten: n}, nil
}

// Build produces the document. Identical input yields identical output.
func (e *LLMsTextExporter) Build(content entities.Content) string {
	site := content.Site
	if site == nil {
		site = &entities.SiteData{}
	}
	var b strings.Builder

	fmt.Fprintf(&b, "# Gion Daikichi Ranch (祇園だいきち牧場)\n\n")
	fmt.Fprintf(&b, "> %s\n\n", entities.Localized(site, "description", llmsLang))

	fmt.Fprintf(&b, "## About\n\n")
	fmt.Fprintf(&b, "%s\n\n", entities.Localized(site, "body", llmsLang))

	writeMenuSection(&b, "Recommended Menu", content.Recommended)
	writeMenuSection(&b, "Collaboration Menu", content.Collaboration)

	fmt.Fprintf(&b, "## Store Information\n\n")
	fmt.Fprintf(&b, "- **Address**: %s\n", entities.Localized(site, "address", llmsLang))
	fmt.Fprintf(&b, "- **Postal Code**: %s\n", site.PostalCode)
	fmt.Fprintf(&b, "- **Phone**: %s\n", site.Tel)
	fmt.Fprintf(&b, "- **Hours**: %s\n", entities.Localized(site, "hours", llmsLang))
	fmt.Fprintf(&b, "- **Closed**: %s\n", entities.Localized(site, "closedDay", llmsLang))
	if site.PaymentEN != "" {
		fmt.Fprintf(&b, "- **Payment**: %s\n", entities.Localized(site, "payment", llmsLang))
	}
	fmt.Fprintf(&b, "- **Reservation**: %s\n\n", entities.Localized(site, "reservation", llmsLang))

	fmt.Fprintf(&b, "## Links\n\n")
	fmt.Fprintf(&b, "- Website: %s\n", e.SiteURL)
	fmt.Fprintf(&b, "- English: %s/en/\n", e.SiteURL)
	for _, link := range site.SNSLinks {
		fmt.Fprintf(&b, "- %s: %s\n", link.Label(), link.URL)
	}

	return b.String()
}

func writeMenuSection(b *strings.Builder, heading string, items []entities.MenuItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- **%s** — %s\n",
			entities.Localized(item, "name", llmsLang),
			entities.FormatPrice(item.Price, llmsLang))
		if desc := entities.Localized(item, "description", llmsLang); desc != "" {
			fmt.Fprintf(b, "  %s\n", desc)
		}
	}
	b.WriteString("\n")
}
