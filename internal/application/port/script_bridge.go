// Package port defines application-layer interfaces for external capabilities.
// Ports keep the use cases independent of the browser engine and storage.
package port

import "context"

// ScriptBridge abstracts an embedded browser control that can navigate,
// run JavaScript and expose a named object the page can post messages to.
// Implementations: WebKitGTK (native) and Chromium over CDP (headless).
type ScriptBridge interface {
	// LoadURI navigates the browser to uri.
	LoadURI(ctx context.Context, uri string) error

	// BindObject exposes name to page scripts. Each message the page sends
	// through it is delivered to onMessage as a JSON string.
	BindObject(ctx context.Context, name string, onMessage func(payload string)) error

	// ExecuteJavaScript runs script once in the current document's main world.
	ExecuteJavaScript(ctx context.Context, script string) error

	// AddUserScript registers script to run at document end in every document
	// loaded after the call. It does not touch the current document.
	AddUserScript(ctx context.Context, script string) error
}

// ScriptValidator checks a script before it is injected.
type ScriptValidator interface {
	// Validate returns an error if source cannot be executed. name is used in diagnostics.
	Validate(name, source string) error
}
