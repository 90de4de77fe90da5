package loop

// Package loop provides the one-shot delay queue used by the widget. Callbacks
// are delivered on the UI goroutine, so gesture and display state is only ever
// touched from one goroutine and needs no locking.
