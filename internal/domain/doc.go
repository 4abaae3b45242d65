// Package domain contains shared domain types used across sub-packages.
// The calendar date type and its transcoder live in domain/date. This root
// package holds sentinel errors and the error types shared by the watcher,
// the clipboard adapters, and the ops surface.
package domain
