// Package logging provides structured logging for the arm control panels.
//
// The package wraps a process-wide zap logger. Both binaries run full-screen
// terminal UIs, so logging is silent unless explicitly enabled, and is best
// pointed at a file while the UI owns the terminal.
//
// # Configuration
//
//	RSX_LOG_LEVEL=debug RSX_LOG_FILE=/tmp/rsx.log rsx-dashboard
//
// Initialize once at startup and flush on exit:
//
//	if err := logging.Initialize("", ""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Control Events
//
// Every button press, toggle, and selector change is recorded with the
// window and control object name:
//
//	logging.LogControl("dashboard", "estop_button", "toggled", zap.Bool("checked", true))
//
// Stylesheet loading reports the path and rule count, or the reason the
// default appearance was used:
//
//	logging.LogStylesheet("styles.yaml", 7, nil)
package logging
