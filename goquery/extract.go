// Package goquery extracts documentation records from generated API pages
// using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docindex"
	"golang.org/x/net/html"
)

// Selectors for entries on a generated global.html page.
const (
	ConstantSelector    = ".constant-entry"
	FunctionSelector    = ".function-entry"
	descriptionSelector = ".description"
)

// ExtractRecords parses a generated API page and returns all constant
// entries followed by all function entries, each in document order.
//
// The description of every record is prefixed with a source code block
// holding the entry title, so the rendered markdown opens with the
// signature.
func ExtractRecords(page string) ([]docindex.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "failed to parse HTML: %v", err)
	}

	records := []docindex.Record{}
	var extractErr error
	extract := func(selector string, meta docindex.Meta, title func(name, header string) string) {
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			rec, err := extractRecord(sel, meta, title)
			if err != nil {
				extractErr = err
				return false
			}
			records = append(records, rec)
			return true
		})
	}

	extract(ConstantSelector, docindex.MetaConst, constantTitle)
	if extractErr != nil {
		return nil, extractErr
	}
	extract(FunctionSelector, docindex.MetaFunc, functionTitle)
	if extractErr != nil {
		return nil, extractErr
	}
	return records, nil
}

func extractRecord(sel *goquery.Selection, meta docindex.Meta, title func(name, header string) string) (*docindex.LocalRecord, error) {
	header := sel.Find("h4").First()
	name, ok := header.Attr("id")
	if !ok || name == "" {
		return nil, docindex.Errorf(docindex.EINVALID, "%s entry without id", meta)
	}
	t := title(name, header.Text())

	var desc strings.Builder
	desc.WriteString(`<pre><code class="language-source">`)
	desc.WriteString(html.EscapeString(t))
	desc.WriteString(`</code></pre>`)
	if body := sel.Find(descriptionSelector).First(); body.Length() > 0 {
		outer, err := goquery.OuterHtml(body)
		if err != nil {
			return nil, docindex.Errorf(docindex.EINVALID, "entry %q: %v", name, err)
		}
		desc.WriteString(outer)
	}

	return &docindex.LocalRecord{
		Label:       name,
		Title:       t,
		Description: desc.String(),
		Meta:        string(meta),
	}, nil
}

// constantTitle drops the leading kind word of a constant header, as in
// "(constant) Infinity :number", and joins the rest. It falls back to name.
func constantTitle(name, header string) string {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return name
	}
	return strings.Join(fields[1:], "")
}

func functionTitle(_, header string) string {
	return strings.TrimSpace(header)
}
