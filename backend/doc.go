// Package backend wires the session store and widget bridge behind the command
// server and runs it from command line options.
package backend
