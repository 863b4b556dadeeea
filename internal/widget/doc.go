// Package widget provides the controls the control-panel windows are built
// from.
//
// Controls carry an object name, used to look up their stylesheet rule, and
// own their callbacks. A window registers handlers on the controls it builds:
//
//	estop := widget.NewPushButton("estop_button", "E-STOP (DISARMED)")
//	estop.SetCheckable(true)
//	estop.OnToggled(func(checked bool) { ... })
//
// Handlers run synchronously inside Click, SetChecked, or SetCurrentIndex, on
// the Bubble Tea update goroutine. There is no global dispatcher and no
// queued delivery. Rendering is left to the windows; widgets hold state only.
package widget
