// Package bot drives the posting cycle: wait for the 16:00:05 UTC
// trigger, resolve the three schedule dates, fetch and extract both wiki
// pages, render, and hand the bulletin to a notifier.
//
// One loop drives one cycle at a time; cycles never overlap. A
// compare-and-swap guard makes Start idempotent, so a delivery
// collaborator may signal readiness more than once (reconnects) without
// spawning a second timer loop. A failed cycle is logged and abandoned;
// the loop proceeds to its next wait.
package bot
