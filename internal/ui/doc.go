// Package ui is the Bubble Tea front end for the password generator.
//
// Pieces:
//   - View: Elm-style unit (Init/Update/View) for a screen or modal
//   - GeneratorView: password field, mode and length controls, history list
//   - OverlayStack: modals drawn over the main view; the top one gets input
//   - KeyHandler: single-key and SPC-led bindings dispatched before views
//   - AppModel: wires the views to the generator, clipboard and tracer
package ui
