// Package alertbar manages transient notification bars stacked at the top of
// a screen. A Manager keeps, per parent screen, the ordered stack of live
// bars and reflows it when bars come and go; each Bar drives its own
// lifecycle from presentation to removal.
//
// The package does no drawing. Everything that touches the UI (posting work
// to the next loop tick, timers, animations, the view hierarchy, taps, text
// metrics) goes through a Host supplied by the caller. All Manager and Bar
// methods must be called from the host's UI loop.
package alertbar
