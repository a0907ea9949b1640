package feed

import (
	"bytes"
	"fmt"
	"html"
	"time"
)

func (g *Generator) runAtom(items []Item) string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n")

	writeElement(&buf, "title", g.cfg.BlogTitle, 2)
	writeElement(&buf, "subtitle", g.cfg.BlogDescription, 2)
	writeElement(&buf, "id", g.blogURL(), 2)

	buf.WriteString(fmt.Sprintf("  <link href=\"%s\" />\n", html.EscapeString(g.blogURL())))
	selfLink := g.absoluteURL(fmt.Sprintf("/%s/atom.xml", g.cfg.RouteBasePath))
	buf.WriteString(fmt.Sprintf("  <link href=\"%s\" rel=\"self\" type=\"application/atom+xml\" />\n",
		html.EscapeString(selfLink)))

	updated := time.Now().UTC()
	if len(items) > 0 {
		updated = items[0].Date
	}
	writeElement(&buf, "updated", updated.Format(time.RFC3339), 2)
	writeElement(&buf, "generator", fmt.Sprintf("Blogcomb/%s", g.cfg.Version), 2)

	for _, item := range items {
		g.writeAtomEntry(&buf, item)
	}

	buf.WriteString("</feed>")

	return buf.String()
}

func (g *Generator) writeAtomEntry(buf *bytes.Buffer, item Item) {
	buf.WriteString("  <entry>\n")

	writeElement(buf, "id", item.Link, 4)
	writeElement(buf, "title", item.Title, 4)
	buf.WriteString(fmt.Sprintf("    <link href=\"%s\" />\n", html.EscapeString(item.Link)))
	writeElement(buf, "updated", item.Date.Format(time.RFC3339), 4)
	writeElement(buf, "summary", item.Description, 4)

	if item.ContentHTML != "" {
		buf.WriteString("    <content type=\"html\"><![CDATA[")
		buf.WriteString(item.ContentHTML)
		buf.WriteString("]]></content>\n")
	}

	for _, author := range item.Authors {
		if author.Name == "" && author.URL == "" {
			continue
		}
		buf.WriteString("    <author>\n")
		writeElement(buf, "name", author.Name, 6)
		writeElement(buf, "uri", author.URL, 6)
		buf.WriteString("    </author>\n")
	}

	for _, category := range item.Categories {
		if category != "" {
			buf.WriteString(fmt.Sprintf("    <category term=\"%s\" />\n", html.EscapeString(category)))
		}
	}

	buf.WriteString("  </entry>\n")
}
