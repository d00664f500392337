// Package theme locates cursor icons inside Xcursor themes.
//
// A theme named T provides icon I when some directory D on the search path
// contains D/T/cursors/I. Themes inherit from others through the Inherits
// key of D/T/index.theme.
//
// Resolve applies the cursor element's fallback chain: the requested theme,
// then "Adwaita", then "DMZ-White". The first theme that provides the icon
// wins.
package theme
