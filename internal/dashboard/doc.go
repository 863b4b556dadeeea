// Package dashboard implements the full RSX arm control dashboard window.
//
// The window is laid out in three columns under a title bar:
//
//	┌────────────────────── RSX Arm Control System ──────────────────────┐
//	│ Control Panel      │ Live Camera Feed             │ Joint States     │
//	│  Camera Topic      │                              │                  │
//	│  Path Planning     │ 3D Arm Visualization         │                  │
//	│ Joint Angles (rad) │ (path planning mode only)    │                  │
//	│ 🛑 EMERGENCY STOP  │                              │                  │
//	├─────────────────────────────────────────────────────────────────────┤
//	│                                                       Status: Ready │
//	└─────────────────────────────────────────────────────────────────────┘
//
// All data is placeholder: joint panels show fixed sample values until
// UpdateJointStates or UpdateJointAngles is called, and the camera and 3D
// panels are static text. The emergency-stop and path-planning toggles only
// change button labels, panel visibility, and the status line. Nothing is
// published anywhere.
package dashboard
