/*
Package observability provides helpers for monitoring the conversation engine.

The engine reports its lifecycle through domain.LifecycleHooks; this package
combines several hook sets into one and offers a logging hook set for
operational visibility.
*/
package observability
