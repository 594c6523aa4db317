// Package canvas provides the pure geometry of the routing canvas: zone
// layout, lane stacking, port positions, node bounds, hit-testing, and
// drag-gesture resolution.
//
// Everything here is a pure function over node snapshots and a canvas
// size. The package never touches engine state; a UI layer uses it to
// resolve pointer gestures into discrete mutation calls on the graph,
// and the graph uses it to compute default placements.
//
// The canvas is split into three zones: a left lane reserved for Input
// device nodes, a right lane for Output device nodes, and the free
// center area for plugin nodes. Lane nodes stack at fixed vertical
// increments; plugin nodes are freely positioned within the center.
package canvas
