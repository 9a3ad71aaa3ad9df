//go:build !android

package widget

// Supported reports whether the platform has a home-screen widget
const Supported = false
