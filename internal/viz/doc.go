// Package viz renders field datasets in the terminal.
//
// The package implements a frame player using the Bubble Tea framework:
//
//   - [Player]: steps every panel through its frames at the output rate
//   - [Canvas]: Braille-based pixel canvas used for quiver plots
//   - [Heatmap]: half-block colored rendering of scalar grids
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	[ ]   - Step one frame back/forward
//	R     - Rewind to frame 0
//	L     - Toggle looping
//	T     - Cycle color themes
//	Q     - Quit
package viz
