// Package vdom provides the virtual markup tree consumed by the renderer.
//
// A tree is built from VNodes using element builders and helpers:
//
//	node := vdom.Div(vdom.Class("card"),
//	    vdom.H1(vdom.Text("Title")),
//	    vdom.P(vdom.Text("Body")),
//	)
//
// Component nodes defer their expansion until render time, which is what
// allows emit-once decisions (see package cssonce) to happen per render
// rather than per tree construction.
package vdom
