package main

import (
	"log/slog"
	"net/http"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/acquire"
	"github.com/fwojciec/digest/gemini"
	"github.com/fwojciec/digest/goquery"
	"github.com/fwojciec/digest/groq"
	"github.com/fwojciec/digest/htmltomarkdown"
	digesthttp "github.com/fwojciec/digest/http"
	"github.com/fwojciec/digest/pipeline"
	"github.com/fwojciec/digest/readability"
	"github.com/fwojciec/digest/rod"
	digestslog "github.com/fwojciec/digest/slog"
	"github.com/fwojciec/digest/trafilatura"
	"github.com/fwojciec/digest/xurls"
	"github.com/fwojciec/digest/youtube"
)

// wire builds the summarization pipeline from parsed flags. The browser is
// not started until a page needs it.
func (m *Main) wire(cli *CLI, logger *slog.Logger) digest.Service {
	staticFetcher := digestslog.NewLoggingFetcher(
		digesthttp.NewFetcher(digesthttp.WithTimeout(cli.FetchTimeout)), "static", logger)
	browserFetcher := digestslog.NewLoggingFetcher(
		rod.NewFetcher(rod.WithFetchTimeout(cli.FetchTimeout)), "browser", logger)
	m.closers = append(m.closers, staticFetcher, browserFetcher)

	extractor, converter := staticExtraction(cli)

	static := &acquire.PageLoader{
		Fetcher:   staticFetcher,
		Extractor: extractor,
		Converter: converter,
	}
	browser := &acquire.PageLoader{
		Fetcher:   browserFetcher,
		Extractor: &goquery.Extractor{StripChrome: cli.StripChrome},
		Converter: goquery.NewTextConverter(),
	}
	video := youtube.NewVideoLoader(&http.Client{Timeout: cli.FetchTimeout})

	policy := &acquire.Policy{
		Video:   digestslog.NewLoggingVideoLoader(video, logger),
		Static:  digestslog.NewLoggingPageLoader(static, "static", logger),
		Browser: digestslog.NewLoggingPageLoader(browser, "browser", logger),
		Logger:  logger,
	}
	if cli.VerifyTLS {
		opts := acquire.StaticFetchOptions()
		opts.InsecureSkipVerify = false
		policy.StaticOptions = &opts
	}

	svc := &pipeline.Service{
		Validator:  xurls.NewValidator(),
		Acquirer:   policy,
		Summarizer: digestslog.NewLoggingSummarizer(newSummarizer(cli.Provider, cli.Model), cli.Provider, logger),
	}

	return digestslog.NewLoggingService(svc, logger)
}

// staticExtraction picks the extractor and converter for the static tier.
// goquery keeps the whole visible page; trafilatura and readability keep
// only what they detect as the main article.
func staticExtraction(cli *CLI) (digest.Extractor, digest.Converter) {
	switch cli.Extractor {
	case "readability":
		return readability.NewExtractor(), htmltomarkdown.NewConverter()
	case "trafilatura":
		return &trafilatura.Extractor{KeepComments: cli.KeepComments}, htmltomarkdown.NewConverter()
	default:
		return &goquery.Extractor{StripChrome: cli.StripChrome}, goquery.NewTextConverter()
	}
}

func newSummarizer(provider, model string) digest.Summarizer {
	switch provider {
	case "gemini":
		s := gemini.NewSummarizer()
		if model != "" {
			s.DefaultModel = model
		}
		return s
	default:
		s := groq.NewSummarizer()
		if model != "" {
			s.DefaultModel = model
		}
		return s
	}
}
