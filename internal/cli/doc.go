// Package cli implements the envkeeper command tree.
//
// Every command resolves a backend once per invocation: a running daemon
// when one answers on the unix socket, the encrypted file directly
// otherwise. Command output goes to stdout; logs and the progress spinner
// stay on stderr so `export` remains safe to eval.
package cli
