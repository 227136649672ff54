// Package task holds the task domain: the priority enum, the keyed
// task store, and JSON file persistence.
//
// The tasks file is a JSON array of task objects:
//
//	[
//	  { "name": "Learn Rust", "priority": "High" },
//	  { "name": "Learn NeoVim", "priority": "Medium" }
//	]
//
// Priority is one of "High", "Medium", "Low"; High sorts first. A
// missing file loads as an empty list, malformed content is an error.
// Saving overwrites the whole file; identifiers are assigned by the
// store at insertion time and do not survive a save/load round trip.
package task
