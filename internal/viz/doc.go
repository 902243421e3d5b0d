// Package viz renders solve results in the terminal.
//
// It provides:
//
//   - [RenderResult]: a styled summary of any result variant
//   - [PlotCurve] and [PlotPumps]: ASCII charts of system and pump curves
//   - [Explorer]: a Bubble Tea program that rescales the pump speed and
//     re-solves the operating point on each key press
//
// # Key Bindings
//
//	↑/→ +  - Increase pump speed
//	↓/← -  - Decrease pump speed
//	R      - Reset to the rated speed
//	T      - Cycle color themes
//	Q      - Quit
package viz
