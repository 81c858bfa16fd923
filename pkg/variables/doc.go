// Package variables implements the variable registry used to resolve
// template placeholders.
//
// A placeholder is written ${name} or ${name:TRANSFORM}. Names match
// [A-Za-z0-9_.]+. TRANSFORM combines a case letter (U upper, L lower) with a
// separator letter (- or _) that replaces spaces:
//
//	${project_name}      My Cool App
//	${project_name:U_}   MY_COOL_APP
//	${project_name:L-}   my-cool-app
//
// Registries are explicit values. Setup-time variables go in a base registry
// and each materialization run works on an Overlay so runs never see each
// other's bindings.
package variables
