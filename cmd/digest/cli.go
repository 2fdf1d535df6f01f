package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/digest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  Config
	Logger  *slog.Logger
	Service digest.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider     string        `default:"${provider}" enum:"groq,gemini" help:"LLM provider (${enum})"`
	Model        string        `default:"${model}" help:"Model name; empty uses the provider default"`
	Extractor    string        `default:"${extractor}" enum:"goquery,trafilatura,readability" help:"Content extractor for static pages (${enum})"`
	StripChrome  bool          `name:"strip-chrome" default:"${strip_chrome}" help:"Drop header, footer, nav and aside elements in the goquery extractor"`
	KeepComments bool          `name:"keep-comments" default:"${keep_comments}" help:"Keep comment sections in the trafilatura extractor"`
	FetchTimeout time.Duration `default:"${fetch_timeout}" help:"Timeout for each page or video fetch"`
	VerifyTLS    bool          `name:"verify-tls" default:"${verify_tls}" help:"Verify TLS certificates on the static page attempt"`
	LogLevel     string        `default:"${log_level}" enum:"debug,info,warn,error" help:"Log level (${enum})"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize a YouTube video or web page"`
	Serve     ServeCmd     `cmd:"" help:"Serve the summarization web form"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL    string `arg:"" help:"YouTube video or website URL"`
	APIKey string `name:"api-key" help:"LLM provider API key (defaults to $DIGEST_API_KEY)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"${addr}" help:"Listen address"`
}
