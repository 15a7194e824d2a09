// Package application wires configuration, logging and the sizing packages
// into the two things the binary does: print a one-shot sizing report and
// serve the calculators over HTTP.
package application
