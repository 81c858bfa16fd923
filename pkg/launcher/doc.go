// Package launcher opens projects in the editor and reveals folders in the
// platform file manager.
//
// The editor executable is the configured one when it exists. Otherwise it
// is discovered: on Windows the Sublime Text install folders under
// %ProgramW6432% and %ProgramFiles% are searched for subl.exe, then
// sublime_text.exe; elsewhere "subl" is looked up on PATH.
//
// A missing editor is not fatal. Open reveals the project folder instead
// and reports ErrLaunchNotFound, which callers show as a warning.
package launcher
