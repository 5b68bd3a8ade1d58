// Package shell renders secrets as eval-able environment exports for the
// bash, zsh, fish and csh shell families.
//
// Values are treated as hostile input: each dialect escapes every character
// it considers special, so `eval` of the output assigns variables and does
// nothing else.
package shell
