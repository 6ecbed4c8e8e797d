// Package activity defines the daily and weekly activity records scraped
// from the Guild Wars wiki and the rollover schedules that decide which
// table row is current at any given instant.
//
// Schedule resolution is pure time arithmetic: it performs no I/O and
// never fails.
package activity
