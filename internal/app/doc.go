// Package app contains the core application logic: the App struct, its
// configuration, and the generation pipeline from matched options to
// rendered output and cache persistence, decoupled from the CLI
// entrypoint.
package app
