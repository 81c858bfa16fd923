// Package templates finds, describes and installs project templates.
//
// A template is a directory. Its name is the directory's base name and its
// contents are materialized into new projects. An optional .nsp.toml
// manifest at the template root gives a description and default variable
// values:
//
//	description = "Go command line tool"
//
//	[variables]
//	license = "MIT"
//	go_version = "1.23"
//
// Templates are looked up in a list of roots; the first root containing a
// template of a given name wins.
package templates
