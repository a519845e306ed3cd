package export

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/cgint/vscode-chat-extractor/internal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLExporter exports conversations as standalone HTML pages: the Markdown
// rendering converted through goldmark with an embedded stylesheet.
type HTMLExporter struct{}

var htmlMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Export exports a conversation to HTML format
func (e *HTMLExporter) Export(conv *internal.Conversation, w io.Writer) error {
	var body bytes.Buffer
	if err := htmlMarkdown.Convert([]byte(RenderMarkdown(conv)), &body); err != nil {
		return fmt.Errorf("failed to convert markdown: %w", err)
	}

	if _, err := fmt.Fprintf(w, htmlShell, html.EscapeString("Conversation "+conv.ID), pageCSS, body.String()); err != nil {
		return err
	}
	return nil
}

// Extension returns the file extension for this format
func (e *HTMLExporter) Extension() string {
	return "html"
}

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
%s
</head>
<body>
%s
</body>
</html>
`

const pageCSS = `<style>
    body {
        font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
        line-height: 1.6;
        max-width: 900px;
        margin: 0 auto;
        padding: 20px;
        color: #333;
    }
    pre, code {
        background-color: #f5f5f5;
        border-radius: 3px;
        padding: 0.2em 0.4em;
        font-family: monospace;
    }
    pre {
        padding: 16px;
        overflow: auto;
    }
    pre code {
        background-color: transparent;
        padding: 0;
    }
    h1, h2, h3, h4 {
        margin-top: 24px;
        margin-bottom: 16px;
    }
    h1 {
        font-size: 2em;
        border-bottom: 1px solid #eaecef;
        padding-bottom: 0.3em;
    }
    h2 {
        font-size: 1.5em;
        border-bottom: 1px solid #eaecef;
        padding-bottom: 0.3em;
    }
    a {
        color: #0366d6;
        text-decoration: none;
    }
    hr {
        border: none;
        border-top: 1px solid #eaecef;
        margin: 24px 0;
    }
</style>`
