package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cssonce/cssonce/pkg/vdom"
)

func TestRenderPageStructure(t *testing.T) {
	renderer := NewRenderer()

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title: "Test Page",
		Body:  vdom.Main(vdom.H1(vdom.Text("Hello"))),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Test Page</title>",
		"<main><h1>Hello</h1></main>",
		"</body>",
		"</html>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestRenderPageLang(t *testing.T) {
	renderer := NewRenderer()

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{Lang: "de", Body: vdom.Div()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `<html lang="de">`) {
		t.Errorf("lang not applied:\n%s", buf.String())
	}
}

func TestRenderPageHeadEntries(t *testing.T) {
	renderer := NewRenderer()

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Body:        vdom.Div(),
		StyleSheets: []string{"/static/site.css"},
		Styles:      []string{"body { margin: 0 }"},
		Meta: []MetaTag{
			{Name: "description", Content: "demo"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		`<link rel="stylesheet" href="/static/site.css">`,
		"<style>body { margin: 0 }</style>",
		`<meta name="description" content="demo">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("head missing %q:\n%s", want, html)
		}
	}
}

func TestRenderPageTitleEscaped(t *testing.T) {
	renderer := NewRenderer()

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title: "<World> & Co",
		Body:  vdom.Div(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<title>&lt;World&gt; &amp; Co</title>") {
		t.Errorf("title not escaped:\n%s", buf.String())
	}
}
