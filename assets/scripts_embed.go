// Package assets embeds files shipped with rpmview.
package assets

import _ "embed"

// FrameSetupScript forwards avatar creator frame events to the rpmlinkobject link.
// install-script writes it under the plugins directory.
//
//go:embed scripts/RpmFrameSetup.js
var FrameSetupScript string
