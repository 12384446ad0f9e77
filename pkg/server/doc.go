// Package server runs mounted component trees.
//
// A Session owns one tree of ComponentInstances. Each instance has an
// Owner (pkg/vango) that is a child of its parent's Owner, so context values
// flow down the tree and disposal cascades up from the leaves.
//
// # Render / commit cycle
//
// Flush repeats two phases until nothing is left to do:
//
//  1. Render: dirty components re-render top-down inside one batch. Child
//     component nodes are matched to existing instances (by key, else by
//     component identity in order); unmatched instances are unmounted and new
//     ones mounted.
//  2. Commit: pending effects run inside one batch, so every store write made
//     during a pass reaches readers as a single update.
//
// Writes from outside the render cycle should go through Dispatch, which
// batches them and flushes:
//
//	sess := server.NewSession(App(), nil)
//	if err := sess.Mount(ctx); err != nil { ... }
//	err := sess.Dispatch(ctx, func() { open.Set(true) })
//	html := sess.HTML()
package server
