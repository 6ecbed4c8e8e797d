// Package scraper provides HTTP fetching and HTML parsing for the Guild
// Wars wiki activity pages.
//
// The scraper fetches the daily and weekly activity pages and extracts
// the table rows matching resolved schedule dates. Fetching retries
// transient failures indefinitely with capped exponential backoff; a
// page whose table lacks the expected row is a structural error returned
// to the caller, since re-fetching the same content would not produce
// the missing date.
package scraper
