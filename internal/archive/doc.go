// Package archive keeps the documents of earlier runs by moving the output
// directory aside before a new run writes into it.
package archive
