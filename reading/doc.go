// Package reading is the boundary to the engine that maps Japanese text to
// its hiragana reading.
//
// A Provider is prepared once with Init and then answers Convert calls. The
// kagome-backed provider resolves its dictionary from a location string:
// "ipa", "uni" or the path of a kagome dictionary zip. Handle owns a
// provider and initializes it lazily: concurrent callers share one
// in-flight initialization, a success is kept for the life of the handle
// and a failure is returned to every waiter and retried on the next call.
package reading
