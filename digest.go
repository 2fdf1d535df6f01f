// Package digest summarizes the content behind a URL. A URL is classified
// as a YouTube video or a generic web page, its text is acquired by the
// matching loaders, and the documents are summarized by a hosted LLM in a
// single prompt.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, youtube/, groq/).
package digest
