// Package render assembles the rendering context and writes the two output
// documents, kindle.html and desktop.html.
//
// Templates are resolved per document: a file of the same name in the
// configured template directory wins, otherwise the embedded default is used.
// Each document is parsed, executed and written independently, so a broken
// template only costs its own document.
package render
