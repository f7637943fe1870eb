// Package ui contains the Bubble Tea program that hosts the dashboard.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (key presses, window resizes).
//   - ctrl+c quits from any state.
//   - Key presses that select a window (F5, F6) or cycle tabs (Tab) are taken
//     by the router itself, but only while the active controller has nothing
//     open. Every other key goes to exactly one controller: the one derived
//     from the (WindowMode, TabMode) pair.
//   - A controller answers with an Outcome. Leave quits the program; a
//     controller.FatalError is stored on the model and quits as well, so the
//     caller of the program can report it.
//
// State ownership:
//   - Each controller owns its list, selection, form and help overlay. The
//     router never touches them; it only reads Mode to decide whether Tab and
//     the window keys are its own.
//   - Pane focus flags are recomputed from deriveActive after every message,
//     so exactly one pane is ever highlighted.
package ui
