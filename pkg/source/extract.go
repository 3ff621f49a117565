package source

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxEntriesPerBrowser caps how many agent strings are kept per browser
// section; the listing page carries hundreds of historical entries and only
// the leading (most recent) ones are worth weighting.
const maxEntriesPerBrowser = 50

// defaultShares maps canonical browser names to their approximate usage share
// in percent. It is consulted when a section heading carries no inline share
// figure.
var defaultShares = map[string]float64{
	"chrome":  80.7,
	"edge":    5.6,
	"firefox": 6.1,
	"safari":  3.7,
	"opera":   2.4,
}

// browserAliases maps common alternative spellings to canonical names.
var browserAliases = map[string]string{
	"internet explorer": "edge",
	"ie":                "edge",
	"msie":              "edge",
	"google":            "chrome",
	"googlechrome":      "chrome",
	"google chrome":     "chrome",
	"ff":                "firefox",
}

var lower = cases.Lower(language.English)

// CanonicalBrowser normalizes a browser name for matching: trimmed,
// lowercased, and resolved through the alias table, so "IE", "Internet
// Explorer" and "edge" all compare equal.
func CanonicalBrowser(name string) string {
	name = strings.TrimSpace(lower.String(name))
	if canonical, ok := browserAliases[name]; ok {
		return canonical
	}
	return name
}

// Extract parses the listing document into records, preserving document
// order. It is a pure function of its input so it can be tested against
// fixed HTML fixtures without any network involvement.
//
// The expected shape is a #liste container holding h4 browser headings, each
// followed by a ul of li>a agent strings. A heading may carry an inline
// usage share ("80.7 %") in a span.share child; otherwise the built-in share
// table supplies the figure. The share is split evenly across the section's
// entries so a browser's total probability tracks its usage share no matter
// how many strings it lists.
//
// A document without the expected structure, or one yielding zero records,
// fails with ErrMalformedDocument: that means the upstream page changed shape
// and silently returning nothing would hide it.
func Extract(r io.Reader) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	liste := doc.Find("#liste")
	if liste.Length() == 0 {
		return nil, fmt.Errorf("%w: listing container not found", ErrMalformedDocument)
	}

	var records []Record
	liste.Find("h4").Each(func(_ int, heading *goquery.Selection) {
		browser := CanonicalBrowser(headingName(heading))
		if browser == "" {
			return
		}

		var agents []string
		heading.NextUntil("h4").Filter("ul").Find("li a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			text := strings.TrimSpace(a.Text())
			if text == "" || strings.Contains(lower.String(text), "more") {
				return true
			}
			agents = append(agents, text)
			return len(agents) < maxEntriesPerBrowser
		})
		if len(agents) == 0 {
			return
		}

		share := headingShare(heading)
		if share <= 0 {
			share = defaultShares[browser]
		}
		weight := share / float64(len(agents))

		for _, agent := range agents {
			records = append(records, Record{
				Browser:   browser,
				UserAgent: agent,
				Weight:    weight,
			})
		}
	})

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no user-agent entries found", ErrMalformedDocument)
	}

	return records, nil
}

// headingName returns the heading text with any share annotation stripped.
func headingName(heading *goquery.Selection) string {
	clone := heading.Clone()
	clone.Find("span").Remove()
	return strings.TrimSpace(clone.Text())
}

// headingShare parses an inline "80.7 %" share out of the heading, or 0 if
// none is present or it does not parse as a number.
func headingShare(heading *goquery.Selection) float64 {
	text := strings.TrimSpace(heading.Find("span.share").First().Text())
	if text == "" {
		return 0
	}
	text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
	share, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return share
}
