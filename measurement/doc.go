// Package measurement builds the structured measurement table from raw ring
// readings.
//
// A raw tuple is (n, voltage_kv, diameter_outer_mm, diameter_inner_mm). Build
// validates each tuple against a Schema, checks the record invariants and
// populates the derived columns:
//
//	voltage      = voltage_kv × 1000            (V)
//	sqrt_voltage = √voltage
//	r            = (d_outer + d_inner) / 4 × 1e-3  (m, mean ring radius)
//	x            = voltage
//	y            = 1 / r²
//
// Row order is preserved. Partition groups rows by ring order n; groups are the
// unit of regression in the analysis package.
package measurement
