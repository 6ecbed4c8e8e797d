// Package notifier provides delivery of rendered activity bulletins.
//
// Two implementations: DiscordNotifier posts an embed to a fixed channel
// over an open session; WriterNotifier prints to a process output stream
// for the textual modes. Delivery is attempted once per cycle; a failure
// is returned to the caller for logging, never retried here.
package notifier
