// Package damage tracks regions that need repainting.
//
// A List collects damage rectangles for one window in its local
// coordinates and coalesces them before a paint pass. Tiles is the
// screen-level equivalent: a lock-free bitmap of fixed-size tiles that any
// goroutine may mark while the paint loop drains it.
package damage
