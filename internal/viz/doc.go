// Package viz renders force curves in the terminal.
//
//   - [Plot]: asciigraph line chart of a series
//   - [RenderResult]: styled diagnostics, summary and chart of a run
//   - [Browser]: Bubble Tea browser over every registered curve
//
// # Key Bindings
//
//	↑/k ↓/j - Select curve
//	d       - Toggle degrees for the fin attack angle
//	q       - Quit
package viz
