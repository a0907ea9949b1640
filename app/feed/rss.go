package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"time"
)

func (g *Generator) runRSS(items []Item) string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	writeElement(&buf, "title", g.cfg.BlogTitle, 4)
	writeElement(&buf, "link", g.blogURL(), 4)
	writeElement(&buf, "description", g.cfg.BlogDescription, 4)

	selfLink := g.absoluteURL(fmt.Sprintf("/%s/rss.xml", g.cfg.RouteBasePath))
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(selfLink)))

	lastBuildDate := time.Now().UTC()
	if len(items) > 0 {
		lastBuildDate = items[0].Date
	}
	writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	writeElement(&buf, "generator", fmt.Sprintf("Blogcomb/%s", g.cfg.Version), 4)
	if g.cfg.Locale != "" {
		writeElement(&buf, "language", g.cfg.Locale, 4)
	}

	for _, item := range items {
		g.writeRSSItem(&buf, item)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String()
}

func (g *Generator) writeRSSItem(buf *bytes.Buffer, item Item) {
	buf.WriteString("    <item>\n")

	buf.WriteString("      <guid isPermaLink=\"false\">")
	xml.EscapeText(buf, []byte(item.ID))
	buf.WriteString("</guid>\n")

	writeElement(buf, "title", item.Title, 6)
	writeElement(buf, "link", item.Link, 6)
	writeElement(buf, "description", item.Description, 6)

	if item.ContentHTML != "" {
		buf.WriteString("      <content:encoded><![CDATA[")
		buf.WriteString(item.ContentHTML)
		buf.WriteString("]]></content:encoded>\n")
	}

	writeElement(buf, "pubDate", item.Date.Format(time.RFC1123Z), 6)

	if len(item.Authors) > 0 && item.Authors[0].Name != "" {
		writeElement(buf, "author", item.Authors[0].Name, 6)
	}

	for _, category := range item.Categories {
		if category != "" {
			writeElement(buf, "category", category, 6)
		}
	}

	buf.WriteString("    </item>\n")
}

func writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
