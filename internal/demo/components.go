// Package demo holds the styled components rendered by the demo server
// and the static exporter. Each component declares its CSS inline at the
// call site and lets an emit-once gate decide whether the block is
// written this render.
package demo

import (
	"github.com/cssonce/cssonce/pkg/cssonce"
	"github.com/cssonce/cssonce/pkg/vdom"
)

// HelloCard greets name. All instances sharing css emit one style block.
func HelloCard(css cssonce.Consumer, name string) *vdom.VNode {
	return cssonce.Styled(css,
		vdom.P(vdom.Text("Hello, "), vdom.B(vdom.Text(name))),
		"p { background: blue }",
		"b { color: yellow }",
	)
}

// Badge renders a pill label. Keyed under "badge".
func Badge(css cssonce.KeyedConsumer, label string) *vdom.VNode {
	return cssonce.StyledKeyed(css, "badge",
		vdom.Span(vdom.Class("badge"), vdom.Text(label)),
		".badge { border-radius: 9999px; padding: 2px 8px }",
		".badge { background: #eef; color: #225 }",
	)
}

// AlertBox renders a highlighted message. Keyed under "alert".
func AlertBox(css cssonce.KeyedConsumer, message string) *vdom.VNode {
	return cssonce.StyledKeyed(css, "alert",
		vdom.Div(vdom.Class("alert"), vdom.Role("alert"), vdom.Text(message)),
		".alert { border-left: 4px solid #c33; padding: 8px 12px }",
		".alert { background: #fee }",
	)
}

// PriceCard renders a plan and its price. Keyed under "price-card".
func PriceCard(css cssonce.KeyedConsumer, plan, price string) *vdom.VNode {
	return cssonce.StyledKeyed(css, "price-card",
		vdom.Div(vdom.Class("price-card"),
			vdom.H3(vdom.Text(plan)),
			vdom.P(vdom.Class("price"), vdom.Text(price)),
		),
		".price-card { border: 1px solid #ddd; padding: 16px }",
		".price-card .price { font-size: 1.5em }",
	)
}

// Keyed maps component names to constructors for the live endpoint, where
// the client picks components by name one message at a time.
var Keyed = map[string]func(css cssonce.KeyedConsumer) *vdom.VNode{
	"badge": func(css cssonce.KeyedConsumer) *vdom.VNode {
		return Badge(css, "new")
	},
	"alert": func(css cssonce.KeyedConsumer) *vdom.VNode {
		return AlertBox(css, "Heads up!")
	},
	"price-card": func(css cssonce.KeyedConsumer) *vdom.VNode {
		return PriceCard(css, "Pro", "$12/mo")
	},
}

// IndexBody renders the index page: one component type, many instances,
// one shared gate.
func IndexBody(css cssonce.Consumer) *vdom.VNode {
	return vdom.Main(
		vdom.H1(vdom.Text("Same component, one style block")),
		HelloCard(css, "World"),
		HelloCard(css, "again"),
		HelloCard(css, "and again"),
	)
}

// GalleryBody renders the gallery page: several component types sharing
// one keyed gate, each type repeated.
func GalleryBody(css cssonce.KeyedConsumer) *vdom.VNode {
	return vdom.Main(
		vdom.H1(vdom.Text("Component gallery")),
		vdom.Section(
			Badge(css, "new"),
			Badge(css, "beta"),
			Badge(css, "deprecated"),
		),
		vdom.Section(
			AlertBox(css, "Styles render once per component type."),
			AlertBox(css, "This alert reuses the block above."),
		),
		vdom.Section(
			PriceCard(css, "Free", "$0"),
			PriceCard(css, "Pro", "$12/mo"),
			PriceCard(css, "Team", "$49/mo"),
		),
	)
}
