package cssonce

import (
	"strings"

	"github.com/cssonce/cssonce/pkg/vdom"
)

// Styled wraps markup in an emit-once style component. When the renderer
// reaches the node it queries css; the winning render produces
//
//	<style>f1f2…fn</style>\n
//
// immediately followed by markup, and every later render produces markup
// alone. Fragments are written verbatim in argument order with no
// separators. The gate is content-agnostic: it never inspects the
// fragments, only whether anyone asked before.
func Styled(css Consumer, markup *vdom.VNode, fragments ...string) *vdom.VNode {
	return vdom.Comp(vdom.Func(func() *vdom.VNode {
		if !css.TryConsume() {
			return markup
		}
		return vdom.Fragment(styleBlock(fragments), markup)
	}))
}

// StyledKeyed is Styled for a shared KeyedConsumer: the style block is
// emitted once per key per tracker, so distinct component types can share
// one tracker for a whole scope.
func StyledKeyed(css KeyedConsumer, key string, markup *vdom.VNode, fragments ...string) *vdom.VNode {
	return vdom.Comp(vdom.Func(func() *vdom.VNode {
		if !css.TryConsume(key) {
			return markup
		}
		return vdom.Fragment(styleBlock(fragments), markup)
	}))
}

// styleBlock builds the raw wrapper node: one opening tag with no
// attributes, the fragments back to back, one closing tag, one newline.
func styleBlock(fragments []string) *vdom.VNode {
	var sb strings.Builder
	sb.WriteString("<style>")
	for _, f := range fragments {
		sb.WriteString(f)
	}
	sb.WriteString("</style>\n")
	return vdom.Raw(sb.String())
}
