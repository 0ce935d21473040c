// Package parallel runs independent mask bands on a work-stealing pool of
// goroutines.
package parallel
