// Package model holds the linear prediction model and the arithmetic it is
// built from. Everything here is pure: no package state and no I/O.
package model
