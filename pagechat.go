// Package pagechat provides a command-line client for asking questions about
// a web page. It fetches the page, extracts its readable main content, keeps
// a short bounded conversation, and relays each question together with the
// page content to a remote completion service.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/, http/).
package pagechat

// WidgetRootID is the id of the chat widget's root element. Pages that embed
// the widget carry its transcript inside this element, so extraction always
// excludes it.
const WidgetRootID = "pagechat"

// GreetingMessage is the assistant message shown when a chat opens.
const GreetingMessage = "Hi! I'm here to help you with any questions about this page. What would you like to know?"

// ErrorReply is the user-visible reply shown when a message cannot be answered.
const ErrorReply = "Sorry, I encountered an error. Please try again."
