// Package scene declares view trees and their constraints in TOML.
//
// A scene lists views, each optionally nested under a parent, and the
// constraints between them:
//
//	[[view]]
//	name = "root"
//
//	[[view]]
//	name = "blue"
//	parent = "root"
//
//	[[constraint]]
//	view = "blue"
//	attribute = "top"
//	to = "center"
//	to_attribute = "bottom"
//	constant = 8
//
// By default a constraint entry targets the view's named constraint for
// attribute (see [layout.Layout.Named]): it is re-targeted at
// to.to_attribute, the listed fields are applied in order (relation,
// multiplier, constant, priority) and it is activated. Entries with
// adhoc = true build a fresh constraint through [layout.Layout.Constraint]
// instead, so several can exist for the same attribute.
//
// Omitted fields keep the value the constraint already has. to_attribute
// defaults to attribute, and active defaults to true.
//
// [Build] turns a validated scene into live views and layouts. The
// embedded demo returned by [Default] lays out a grey square centred in
// the root, a red square left of it and a blue view hanging off its
// bottom edge.
package scene
