// Package presenter renders everything proteus shows to the user: encode
// plans, tips, hints, the progress bar, result summaries, and the info,
// sizes and cheatsheet panels.
//
// Colour is applied only when the destination is a terminal. Nothing in this
// package runs processes or touches media files; callers pass in the numbers
// they computed.
package presenter
