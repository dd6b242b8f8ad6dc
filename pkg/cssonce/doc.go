// Package cssonce renders a component's embedded styles only once per
// tracked scope.
//
// A component that carries its own <style> block would repeat that block
// every time it is rendered on a page. cssonce gates the emission behind a
// tracker shared by all instances within one scope:
//
//	css := cssonce.New()
//
//	hello := func(name string) *vdom.VNode {
//	    return cssonce.Styled(css,
//	        vdom.P(vdom.Text("Hello, "), vdom.B(vdom.Text(name))),
//	        "p { background: blue }",
//	        "b { color: yellow }",
//	    )
//	}
//
//	// First render: <style>p { background: blue }b { color: yellow }</style>
//	// followed by a newline and the markup. Second render: markup only.
//
// The tracker holds a single one-way flag and nothing else: it is not a
// CSS parser, deduplicator, or scoping engine. For pages mixing several
// styled component types behind one tracker, KeyedTracker latches per
// component key instead.
package cssonce
