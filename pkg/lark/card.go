// Package lark models the interactive-card messages Lark incoming
// webhooks accept. The card body is a closed set of typed elements so the
// wire format's idiosyncrasies live here and nowhere else.
package lark

// Message is the envelope posted to a Lark incoming webhook.
type Message struct {
	MsgType string `json:"msg_type"`
	Card    Card   `json:"card"`
}

type Card struct {
	Header   Header    `json:"header"`
	Elements []Element `json:"elements"`
}

type Header struct {
	Template string `json:"template"`
	Title    Text   `json:"title"`
}

// Text is a tagged text object. The tag selects the renderer: plain_text
// for headers and button labels, lark_md for body content.
type Text struct {
	Content string `json:"content"`
	Tag     string `json:"tag"`
}

// Element is one renderable block of the card body. Implementations form
// a closed set; their order in Card.Elements is preserved on the wire.
type Element interface {
	element()
}

// TextBlock is a div rendering a single text object.
type TextBlock struct {
	Tag  string `json:"tag"`
	Text Text   `json:"text"`
}

// FieldsBlock is a div laying out labeled fields, short ones side by side.
type FieldsBlock struct {
	Tag    string  `json:"tag"`
	Fields []Field `json:"fields"`
}

type Field struct {
	IsShort bool `json:"is_short"`
	Text    Text `json:"text"`
}

// ActionBlock holds interactive controls, here always link buttons.
type ActionBlock struct {
	Tag     string   `json:"tag"`
	Actions []Button `json:"actions"`
}

type Button struct {
	Tag  string `json:"tag"`
	Text Text   `json:"text"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

func (TextBlock) element()   {}
func (FieldsBlock) element() {}
func (ActionBlock) element() {}

// MarkdownBlock returns a div rendering content as lark_md.
func MarkdownBlock(content string) TextBlock {
	return TextBlock{Tag: "div", Text: Text{Content: content, Tag: "lark_md"}}
}

// ShortField returns a half-width field rendering content as lark_md.
func ShortField(content string) Field {
	return Field{IsShort: true, Text: Text{Content: content, Tag: "lark_md"}}
}

// Fields groups fields into a single div block.
func Fields(fields ...Field) FieldsBlock {
	return FieldsBlock{Tag: "div", Fields: fields}
}

// LinkButton returns an action block with one primary button opening url.
func LinkButton(label, url string) ActionBlock {
	return ActionBlock{
		Tag: "action",
		Actions: []Button{{
			Tag:  "button",
			Text: Text{Content: label, Tag: "plain_text"},
			URL:  url,
			Type: "primary",
		}},
	}
}

// NewCardMessage wraps a header and ordered elements in the interactive
// message envelope. The header template is the card's accent color.
func NewCardMessage(template, title string, elements ...Element) *Message {
	return &Message{
		MsgType: "interactive",
		Card: Card{
			Header: Header{
				Template: template,
				Title:    Text{Content: title, Tag: "plain_text"},
			},
			Elements: elements,
		},
	}
}
