// Package render turns compatibility graphs and coalition tables into
// figures, Graphviz documents and terminal tables.
//
// Figures are drawn with gonum/plot on positions from package layout:
//
//   - PlotNetwork draws the raw network, node area proportional to seats.
//   - PlotCoalitions draws one subplot per coalition (one column, a row per
//     record) on a shared layout, colouring each party by Classify.
//
// Colours:
//
//	green   necessary party
//	yellow  member; the necessary parties alone fall short
//	orange  member; the necessary parties alone suffice
//	red     everyone else
//
// DOT exports the same colouring through gonum's encoding/dot, and Table
// renders a ranked table with lipgloss.
package render
