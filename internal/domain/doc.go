// Package domain models daily weather records and the pure transformations
// used to summarise them.
//
// # Data Source
//
// Records come from a comma-separated table with (at least) the columns
// date, min and max:
//
//	date,min,max
//	2021-07-02,49,67
//	2021-07-03,57,68
//
// The date column is an ISO-8601 calendar date. A full timestamp such as
// "2021-07-02T07:00:00+08:00" is also accepted; the calendar fields are taken
// in the timestamp's own offset. min and max are Fahrenheit readings.
//
// # Units and Rounding
//
// Celsius values are computed as (f - 32) * 5 / 9 and rounded to one decimal
// place. Rounding uses the exact binary value of the float and breaks exact
// ties to even, so 0.25 rounds to 0.2 and 0.35 (stored as 0.34999...) rounds
// to 0.3. See [Round1].
//
// # Extrema
//
// Two tie-break rules coexist:
//
//	FindMin / FindMax   last occurrence of the extreme value wins
//	summary overview    first strictly-better record wins
//
// They are kept as separate algorithms.
package domain
