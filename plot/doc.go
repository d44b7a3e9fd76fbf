// Package plot renders measurement groups with gonum/plot.
//
// A Style decides which coordinates of a group are drawn, how the axes are
// labeled and whether fitted lines are overlaid. The uncertainty bars come from
// a regression.ErrorModel passed next to the style, so the same style can be
// drawn with different error assumptions. The output format follows the file
// extension (.png, .svg, .pdf, .eps, .jpg, .tif).
package plot
