// Package config provides the user settings file for the control panel
// programs.
//
// The settings are optional. A missing file yields Default(), so both
// programs start with no setup at all.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/rsx-arm/config.yaml or $HOME/.config/rsx-arm/config.yaml
//   - macOS: $HOME/.config/rsx-arm/config.yaml
//   - Windows: %LOCALAPPDATA%\rsx-arm\config.yaml
//
// # Usage Example
//
//	path, err := config.Path()
//	if err != nil {
//	    return err
//	}
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//
//	cfg.Stylesheet = "/etc/rsx/panel.yaml"
//	if err := cfg.Save(path); err != nil {
//	    return err
//	}
package config
