//go:build wfcdebug

package wave

const debug = true
