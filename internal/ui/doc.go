// Package ui implements the live properties panel using Bubbletea. The
// program's Update loop is the only place display state changes; background
// producers reach it through ProgramSink.
package ui
