// Package registration lets descendant components register values that an
// ancestor reads as one sorted collection.
//
// A registration context is created once, usually at package level, and
// exposes three parts that share the same value type:
//
//   - Provider: a scope boundary owning an independent store
//   - Register: a hook that keeps one entry in the nearest store for as long
//     as the calling component is mounted
//   - Values: a hook returning the store's values, sorted
//
// Usage:
//
//	var Headings = registration.Create(
//	    registration.WithComparator(func(a, b Heading) int {
//	        return cmp.Compare(a.Order, b.Order)
//	    }),
//	)
//
//	func TOC() *vdom.VNode {
//	    items := Headings.Values()
//	    return vdom.Ul(vdom.Range(items, func(_ int, h Heading) *vdom.VNode {
//	        return vdom.Li(h.Title)
//	    }))
//	}
//
//	func Section(h Heading) vdom.Component {
//	    return vdom.Func(func() *vdom.VNode {
//	        Headings.Register(h)
//	        return vdom.H2(h.Title)
//	    })
//	}
//
//	func Page() *vdom.VNode {
//	    return Headings.Provider(
//	        vdom.Nav(vdom.Func(TOC)),
//	        Section(Heading{Title: "Intro", Order: 1}),
//	    )
//	}
//
// Registrations without an enclosing Provider share one process-wide store
// per context, created on first use.
//
// # Ordering
//
// Values are ordered by registrant id first, which follows activation order,
// then stably sorted by the comparator. Without a comparator, strings and
// numbers use their natural order and other types compare by their fmt.Sprint
// form.
//
// # Lifecycle
//
// Register writes in the commit phase after the render that supplied the
// value, overwrites the entry in place when the value changes, and removes it
// exactly once when the component unmounts.
package registration
