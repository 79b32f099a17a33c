// Package webobj sizes trees of server-driven web objects.
//
// Users import this package for the public API: the node tree, the layout
// engine, surfaces and the stock control contents. The engine itself lives
// in internal/layout; see that package for the phase algorithms.
package webobj
