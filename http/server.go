package http

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/digest"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ShutdownTimeout is the time given for outstanding requests to finish before shutdown.
const ShutdownTimeout = 3 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Server serves the summarization form and its JSON counterpart.
type Server struct {
	ln   net.Listener
	echo *echo.Echo

	// Bind address for the server's listener.
	Addr string

	// Service runs each submitted request.
	Service digest.Service

	Logger *slog.Logger
}

// NewServer returns a new Server with routes registered.
func NewServer(svc digest.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		echo:    echo.New(),
		Service: svc,
		Logger:  logger,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Renderer = &templateRenderer{tmpl: templates}
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Info("http request",
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"duration", v.Latency,
			)
			return nil
		},
	}))

	s.echo.GET("/", s.handleIndex)
	s.echo.POST("/", s.handleSubmit)
	s.echo.POST("/api/summarize", s.handleAPISummarize)
	s.echo.GET("/healthz", s.handleHealth)

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Open binds the listener to Addr.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	s.echo.Listener = s.ln
	return nil
}

// Serve accepts connections until Close is called. Open must be called first.
func (s *Server) Serve() error {
	if err := s.echo.Start(s.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(ctx)
}

// Port returns the TCP port for the running server.
// This is useful in tests where we allocate a random port by using ":0".
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// URL returns the local URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// pageData is passed to the index template.
type pageData struct {
	URL       string
	Summary   string
	Invalid   string
	Exception string
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.Render(http.StatusOK, "index", pageData{})
}

func (s *Server) handleSubmit(c echo.Context) error {
	req := &digest.Request{
		APIKey: c.FormValue("api_key"),
		URL:    c.FormValue("url"),
		Model:  c.FormValue("model"),
	}

	data := pageData{URL: req.URL}

	summary, err := s.Service.Digest(c.Request().Context(), req)
	if err != nil {
		if digest.ErrorCode(err) == digest.EINVALID {
			data.Invalid = digest.ErrorMessage(err)
		} else {
			data.Exception = err.Error()
		}
		return c.Render(statusFor(err), "index", data)
	}

	data.Summary = summary
	return c.Render(http.StatusOK, "index", data)
}

// summarizeRequest is the JSON body of POST /api/summarize.
type summarizeRequest struct {
	APIKey string `json:"api_key"`
	URL    string `json:"url"`
	Model  string `json:"model"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleAPISummarize(c echo.Context) error {
	var body summarizeRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Code: digest.EINVALID})
	}

	req := &digest.Request{APIKey: body.APIKey, URL: body.URL, Model: body.Model}

	summary, err := s.Service.Digest(c.Request().Context(), req)
	if err != nil {
		msg := err.Error()
		if digest.ErrorCode(err) == digest.EINVALID {
			msg = digest.ErrorMessage(err)
		}
		return c.JSON(statusFor(err), errorResponse{Error: msg, Code: digest.ErrorCode(err)})
	}

	return c.JSON(http.StatusOK, summarizeResponse{Summary: summary})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// statusFor maps an application error code to an HTTP status.
func statusFor(err error) int {
	switch digest.ErrorCode(err) {
	case digest.EINVALID:
		return http.StatusBadRequest
	case digest.EACQUIRE, digest.ESUMMARIZE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type templateRenderer struct {
	tmpl *template.Template
}

func (r *templateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
