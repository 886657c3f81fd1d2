package notion

import (
	"strconv"
	"strings"
)

// page is the subset of a Notion page object the gateway reads.
type page struct {
	ID         string              `json:"id"`
	Object     string              `json:"object"`
	Properties map[string]property `json:"properties"`
}

type property struct {
	Type        string     `json:"type"`
	Number      *float64   `json:"number"`
	Title       []richText `json:"title"`
	RichText    []richText `json:"rich_text"`
	Date        *dateValue `json:"date"`
	MultiSelect []option   `json:"multi_select"`
	Select      *option    `json:"select"`
}

type richText struct {
	PlainText string    `json:"plain_text,omitempty"`
	Text      *textBody `json:"text,omitempty"`
}

type textBody struct {
	Content string `json:"content"`
}

type dateValue struct {
	Start string `json:"start"`
}

type option struct {
	Name string `json:"name"`
}

// text renders the property value as text. A number property without a value
// reads as "0". ok is false for unsupported property types.
func (p property) text() (value string, ok bool) {
	switch p.Type {
	case "number":
		if p.Number == nil {
			return "0", true
		}
		return strconv.FormatFloat(*p.Number, 'f', -1, 64), true
	case "title":
		return joinText(p.Title), true
	case "rich_text":
		return joinText(p.RichText), true
	case "date":
		if p.Date == nil {
			return "", true
		}
		return p.Date.Start, true
	case "multi_select":
		names := make([]string, len(p.MultiSelect))
		for i, o := range p.MultiSelect {
			names[i] = o.Name
		}
		return strings.Join(names, ","), true
	case "select":
		if p.Select == nil {
			return "", true
		}
		return p.Select.Name, true
	default:
		return "", false
	}
}

// joinText concatenates every fragment, since long values are split across
// several rich text items.
func joinText(items []richText) string {
	var b strings.Builder
	for _, item := range items {
		switch {
		case item.PlainText != "":
			b.WriteString(item.PlainText)
		case item.Text != nil:
			b.WriteString(item.Text.Content)
		}
	}
	return b.String()
}

// maxTextContent is the Notion limit for a single rich text item.
const maxTextContent = 2000

// splitText cuts s into rich text items of at most maxTextContent runes.
func splitText(s string) []richText {
	items := []richText{}
	runes := []rune(s)
	for len(runes) > 0 {
		n := min(len(runes), maxTextContent)
		items = append(items, richText{Text: &textBody{Content: string(runes[:n])}})
		runes = runes[n:]
	}
	return items
}
