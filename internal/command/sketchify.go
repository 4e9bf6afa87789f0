package command

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultSketchifyURL is the endpoint of the Sketchify service
// (https://verylegit.link), which rewrites URLs into sketchy-looking ones.
const DefaultSketchifyURL = "http://verylegit.link/sketchify"

const sketchifyBodyLimit = 4 << 10

// SketchifyCommand rewrites a URL via the external Sketchify service. The
// client and endpoint are injected so tests can point it at a local server.
type SketchifyCommand struct {
	Client  *http.Client
	BaseURL string
}

func NewSketchify(client *http.Client) *SketchifyCommand {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SketchifyCommand{Client: client, BaseURL: DefaultSketchifyURL}
}

func (*SketchifyCommand) Name() string      { return "sketchify" }
func (*SketchifyCommand) Aliases() []string { return nil }
func (*SketchifyCommand) Description() string {
	return "Turn a link into a much sketchier looking version"
}

func (c *SketchifyCommand) Run(ctx context.Context, input string) (Response, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return nil, Validationf("no URL provided")
	}
	if strings.ContainsAny(raw, " \t") {
		return nil, Validationf("expected a single URL")
	}

	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return nil, Validationf("invalid URL: **%s**", raw)
	}

	form := url.Values{"long_url": {parsed.String()}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, Internalf(err, "an internal error occurred, please try again later")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, Requestf(err, "could not complete request, please try again")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, Requestf(fmt.Errorf("sketchify returned %s", resp.Status), "could not complete request, please try again")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, sketchifyBodyLimit))
	if err != nil {
		return nil, Requestf(err, "could not complete request, please try again")
	}

	// The service replies with a bare hostname-and-path most of the time.
	sketchy := strings.TrimSpace(string(body))
	if !strings.HasPrefix(sketchy, "http") {
		sketchy = "http://" + sketchy
	}

	out, err := url.Parse(sketchy)
	if err != nil {
		return nil, Requestf(err, "the sketchify service returned an invalid URL")
	}

	return Link{URL: out.String()}, nil
}
