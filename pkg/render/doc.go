// Package render turns VNode trees into HTML.
//
// Component nodes are rendered statelessly by calling Render, which suits
// snapshots and tests. Mounted trees should be expanded by the session first
// (server.Session.Tree) so hooks run inside their owners.
//
//	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
package render
