// Package display renders graphs and enumeration results as styled
// console listings. It owns all formatting: the core store and the esu
// enumerator only hand over labels, adjacency views, and one-based
// vertex index sequences.
//
// All output goes through a Renderer bound to an io.Writer, so listings
// can target a terminal, a buffer in tests, or a file unchanged.
package display
