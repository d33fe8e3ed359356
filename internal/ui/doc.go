// Package ui contains the Bubble Tea program used as a terminal picker when
// rofi is not available.
//
// A Picker runs one program per invocation and translates the key the user
// pressed into the same exit-code actions rofi reports:
//   - delete removes the selected notification (10)
//   - enter acknowledges it (11)
//   - alt+r refreshes the list (12)
//   - alt+d removes every notification of the selected application (13)
//   - esc and ctrl+c cancel
//
// Row state (filtering, cursor, viewport) lives in internal/ui/state.Level so
// the Model only deals with message routing and rendering.
package ui
