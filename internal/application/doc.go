// Package application provides application initialization and dependency wiring.
// It builds the plate selector, narrator and chart helpers from configuration,
// keeping the main package focused on CLI parsing and output.
package application
