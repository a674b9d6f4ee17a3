// Image verification: automated check plus manual confirmation fallback
package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/14-harish/showtracker/internal/shared"
)

// ImageVerifier implements [Verifier] against the backend's /verify-image endpoint.
type ImageVerifier struct {
	baseURL    string
	httpClient *http.Client
}

var _ Verifier = (*ImageVerifier)(nil)

// NewImageVerifier creates a verifier client for the given base URL.
func NewImageVerifier(baseURL string, client *http.Client) *ImageVerifier {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &ImageVerifier{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Check asks the verification endpoint whether the image matches the title.
//
// Transport failures, non-2xx responses, and negative verdicts are all the
// same outcome: verification did not pass.
func (v *ImageVerifier) Check(ctx context.Context, title, imageURL string) bool {
	payload, err := json.Marshal(map[string]string{"title": title, "image_url": imageURL})
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/verify-image", bytes.NewReader(payload))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}

	var verdict struct {
		IsMatch bool `json:"is_match"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return false
	}

	return verdict.IsMatch
}

// VerifyPoster runs the two-stage verification workflow and returns the URL
// to persist as the record's poster.
//
// The automated check runs first; when it does not pass, the confirmer takes
// over and the user's decision is final. An empty candidate skips the
// workflow entirely. Both add and edit saves route through here.
func VerifyPoster(ctx context.Context, verifier Verifier, confirmer Confirmer, title, imageURL string) (string, error) {
	if imageURL == "" {
		return "", nil
	}

	if verifier.Check(ctx, title, imageURL) {
		return imageURL, nil
	}

	return confirmer.Confirm(ctx, title, imageURL)
}

type confirmationResult struct {
	url string
	err error
}

// Confirmation is a single-shot handoff between a pending save and the manual
// confirmation surface. Exactly one of Confirm or Cancel takes effect; later
// calls are no-ops. Wait never hangs: dismissal resolves it with
// [shared.ErrConfirmationCancelled] instead of leaving the caller pending.
type Confirmation struct {
	once sync.Once
	ch   chan confirmationResult
}

// NewConfirmation creates an unresolved confirmation.
func NewConfirmation() *Confirmation {
	return &Confirmation{ch: make(chan confirmationResult, 1)}
}

// Confirm resolves the confirmation with the URL on display at confirm time.
func (c *Confirmation) Confirm(url string) {
	c.once.Do(func() { c.ch <- confirmationResult{url: url} })
}

// Cancel resolves the confirmation as dismissed.
func (c *Confirmation) Cancel() {
	c.once.Do(func() { c.ch <- confirmationResult{err: shared.ErrConfirmationCancelled} })
}

// Wait blocks until the confirmation resolves or the context ends.
func (c *Confirmation) Wait(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-c.ch:
		return res.url, res.err
	}
}

// PromptConfirmer implements [Confirmer] over a terminal for CLI flows.
//
// "y" confirms the displayed URL, "o" opens it in the system browser for
// inspection, anything else (or EOF) cancels.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer

	// OpenURL is swappable for tests; defaults to [shared.OpenBrowser].
	OpenURL func(url string) error
}

var _ Confirmer = (*PromptConfirmer)(nil)

func (p *PromptConfirmer) Confirm(ctx context.Context, title, imageURL string) (string, error) {
	open := p.OpenURL
	if open == nil {
		open = shared.OpenBrowser
	}

	fmt.Fprintf(p.Out, "Automatic verification could not match this poster to %q.\n", title)
	fmt.Fprintf(p.Out, "Poster: %s\n", imageURL)

	scanner := bufio.NewScanner(p.In)
	for {
		fmt.Fprint(p.Out, "Use this image? [y]es / [o]pen in browser / [n]o: ")

		if !scanner.Scan() {
			return "", shared.ErrConfirmationCancelled
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return imageURL, nil
		case "o", "open":
			if err := open(imageURL); err != nil {
				fmt.Fprintf(p.Out, "could not open browser: %v\n", err)
			}
		default:
			return "", shared.ErrConfirmationCancelled
		}
	}
}
