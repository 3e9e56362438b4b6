// Package ui is the Bubble Tea front end: the root AppModel, one View per
// section, and the shared chrome, keybinds, notices and styles.
//
// Core abstractions:
//   - View: a section screen with its own model, update and view (Elm-style)
//   - Section: which View is mounted; exactly one at a time
//   - KeyHandler: SPC leader sequences dispatched through a KeybindRegistry
//   - OverlayStack: popups drawn over the active View, dismissed by key
//   - FocusManager: tab order across the inputs of a form
package ui
