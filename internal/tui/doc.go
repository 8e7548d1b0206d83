// Package tui runs the tree in the terminal using the Bubble Tea framework.
//
// [Model] renders the tree once on start, recolors its stars on a repeating
// tick and, after a single start gesture, plays music and types the lyrics
// underneath.
//
// # Key Bindings
//
//	Enter/Space - Start music and lyrics
//	Click       - Same, on the start banner
//	Q/Esc       - Quit
//
// The start gesture fires at most once. A playback failure is logged and
// does not stop the lyrics.
package tui
