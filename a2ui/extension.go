package a2ui

import (
	"github.com/a2aproject/a2a-go/a2a"
)

const (
	// ExtensionURI identifies the A2UI extension in agent cards and
	// negotiation headers.
	ExtensionURI = "https://a2ui.org/a2a-extension/a2ui/v0.8"

	// ExtensionHeader is the HTTP header clients and servers use to request
	// and acknowledge extension activation.
	ExtensionHeader = "X-A2A-Extensions"

	// MIMEType tags DataParts carrying A2UI messages so renderers can tell
	// them apart from ordinary structured data.
	MIMEType = "application/vnd.a2ui+json"
)

// CardExtension returns the extension declaration an A2UI-capable agent
// advertises in its card capabilities.
func CardExtension() a2a.AgentExtension {
	return a2a.AgentExtension{
		URI:         ExtensionURI,
		Description: "Responds with A2UI UI description messages.",
	}
}
