// Package twissplot renders the Twiss evolution recorded in a
// twiss.Series, either as a gonum/plot figure for reports or as an
// asciigraph chart for a quick look in the terminal.
//
// Beta is drawn as a solid line with circle markers, alpha as a dashed
// line with cross markers. For 6x6 beam matrices the plotted plane is
// chosen with WithPlane; 2x2 series always show the horizontal plane.
package twissplot
