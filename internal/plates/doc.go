// Package plates selects the plates to load on each side of a barbell to reach
// a requested total weight from a fixed inventory.
package plates
