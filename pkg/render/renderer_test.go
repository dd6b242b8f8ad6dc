package render

import (
	"strings"
	"testing"

	"github.com/cssonce/cssonce/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.RenderToString(vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer()

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := NewRenderer()

	node := vdom.Img(vdom.Src("/image.png"), vdom.Alt("test"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<img alt="test" src="/image.png">` {
		t.Errorf("attributes should be sorted, got %q", html)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer()

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "input",
			node: vdom.Input(vdom.Type("text"), vdom.Name("email")),
			want: `<input name="email" type="text">`,
		},
		{
			name: "br",
			node: vdom.Br(),
			want: `<br>`,
		},
		{
			name: "hr",
			node: vdom.Hr(),
			want: `<hr>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.RenderToString(vdom.Input(vdom.Type("text"), vdom.Disabled(true)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<input disabled type="text">` {
		t.Errorf("got %q", html)
	}

	html, err = renderer.RenderToString(vdom.Input(vdom.Type("text"), vdom.Disabled(false)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "disabled") {
		t.Errorf("false boolean attribute should be omitted, got %q", html)
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.RenderToString(vdom.A(vdom.Href(`/q?a=1&b="2"`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `href="/q?a=1&amp;b=&quot;2&quot;"`) {
		t.Errorf("attribute should be escaped, got %q", html)
	}
}

func TestRenderRawUnescaped(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.RenderToString(vdom.Raw("<style>p { color: red }</style>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<style>p { color: red }</style>" {
		t.Errorf("raw content altered: %q", html)
	}
}

func TestRenderFragmentNoWrapper(t *testing.T) {
	renderer := NewRenderer()

	node := vdom.Fragment(vdom.Text("a"), vdom.Text("b"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "ab" {
		t.Errorf("got %q, want %q", html, "ab")
	}
}

func TestRenderComponentExpandsAtRenderTime(t *testing.T) {
	renderer := NewRenderer()

	calls := 0
	node := vdom.Comp(vdom.Func(func() *vdom.VNode {
		calls++
		return vdom.Span(vdom.Text("x"))
	}))

	if calls != 0 {
		t.Fatal("component rendered before the renderer reached it")
	}

	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("got %d component renders, want 1", calls)
	}
	if html != "<span>x</span>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderNilNode(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.RenderToString(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "" {
		t.Errorf("nil node should render nothing, got %q", html)
	}
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewRenderer()

	node := vdom.Div(vdom.Class("a"), vdom.ID("b"), vdom.Data("x", "1"),
		vdom.P(vdom.Text("body")),
	)

	first, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := renderer.RenderToString(node)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("output not deterministic:\n%q\n%q", first, again)
		}
	}
}
