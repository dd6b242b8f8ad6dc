// Package render converts vdom trees into HTML strings or streams.
//
// The renderer produces byte-deterministic output: sorted attributes, no
// invented whitespace, text escaped, raw nodes verbatim. Determinism is
// load-bearing for emit-once styling, where tests and callers depend on
// exactly which bytes precede and follow a style block.
//
// To render a tree:
//
//	renderer := render.NewRenderer()
//	html, err := renderer.RenderToString(node)
//
// To render a complete document:
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "My Page",
//	    Body:  bodyNode,
//	})
package render
