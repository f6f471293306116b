// Package pkg provides the libraries behind viewlayout.
//
// # Overview
//
// Viewlayout manages layout constraints through mutable, named properties.
// A view's layout owns one constraint per attribute (top, width, centerX,
// ...); assigning another view's property re-targets that constraint in
// place, and changing its relation, multiplier, constant or priority swaps
// the underlying native constraint without losing its activation.
//
// The pkg directory is organized as:
//
//  1. [toolkit] - Views, attributes and native constraints in an engine
//  2. [constraint] - Mutable constraints over native ones
//  3. [layout] - Per-view controllers with named constraints
//  4. [cache] - Per-owner instance cache and the on-disk render cache
//  5. [scene] - TOML scene files built into views and layouts
//  6. [render/dot] - Graphviz export of built scenes
//
// Supporting packages: [errors] (structured error codes), [observability]
// (hooks for logging and metrics), [buildinfo] (version information).
//
// # Architecture
//
//	scene.toml
//	     ↓
//	[scene] (parse, validate, build)
//	     ↓
//	[layout] named constraints per view, cached in [cache]
//	     ↓
//	[constraint] mutable wrappers
//	     ↓
//	[toolkit] engine of active constraints
//	     ↓
//	tables, DOT, SVG
//
// # Quick Start
//
//	e := toolkit.NewEngine()
//	root, blue, center := e.NewView("root"), e.NewView("blue"), e.NewView("center")
//	root.AddSubview(center)
//	root.AddSubview(blue)
//
//	l := layout.For(blue)
//	l.SetTop(layout.For(center).Bottom())
//	l.Top().SetConstant(8)
//	l.Top().SetActive(true)
//
// # Concurrency
//
// Views, layouts and engines are not synchronized. Like UI state in most
// toolkits they belong to one goroutine. Only the observability hook
// registry may be touched from several goroutines.
//
// [toolkit]: github.com/matzehuels/viewlayout/pkg/toolkit
// [constraint]: github.com/matzehuels/viewlayout/pkg/constraint
// [layout]: github.com/matzehuels/viewlayout/pkg/layout
// [cache]: github.com/matzehuels/viewlayout/pkg/cache
// [scene]: github.com/matzehuels/viewlayout/pkg/scene
// [render/dot]: github.com/matzehuels/viewlayout/pkg/render/dot
// [errors]: github.com/matzehuels/viewlayout/pkg/errors
// [observability]: github.com/matzehuels/viewlayout/pkg/observability
// [buildinfo]: github.com/matzehuels/viewlayout/pkg/buildinfo
package pkg
