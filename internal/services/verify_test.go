package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/14-harish/showtracker/internal/shared"
	tu "github.com/14-harish/showtracker/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifyServer(t *testing.T, verdict bool, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/verify-image", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotEmpty(t, payload["title"])
		assert.NotEmpty(t, payload["image_url"])

		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]bool{"is_match": verdict})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestImageVerifierCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("Positive Verdict", func(t *testing.T) {
		server := verifyServer(t, true, http.StatusOK)
		v := NewImageVerifier(server.URL, nil)
		assert.True(t, v.Check(ctx, "Dune", "https://img.example.com/dune.jpg"))
	})

	t.Run("Negative Verdict", func(t *testing.T) {
		server := verifyServer(t, false, http.StatusOK)
		v := NewImageVerifier(server.URL, nil)
		assert.False(t, v.Check(ctx, "Dune", "https://img.example.com/dune.jpg"))
	})

	t.Run("Non-2xx Treated As Not Passed", func(t *testing.T) {
		server := verifyServer(t, true, http.StatusInternalServerError)
		v := NewImageVerifier(server.URL, nil)
		assert.False(t, v.Check(ctx, "Dune", "https://img.example.com/dune.jpg"))
	})

	t.Run("Transport Failure Treated As Not Passed", func(t *testing.T) {
		client := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused"))}
		v := NewImageVerifier("http://example.com", client)
		assert.False(t, v.Check(ctx, "Dune", "https://img.example.com/dune.jpg"))
	})

	t.Run("Malformed Body Treated As Not Passed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		v := NewImageVerifier(server.URL, nil)
		assert.False(t, v.Check(ctx, "Dune", "https://img.example.com/dune.jpg"))
	})
}

func TestVerifyPoster(t *testing.T) {
	ctx := context.Background()

	t.Run("AI Approval Skips Manual Confirmation", func(t *testing.T) {
		verifier := &tu.MockVerifier{Verdict: true}
		confirmer := &tu.MockConfirmer{}

		url, err := VerifyPoster(ctx, verifier, confirmer, "Dune", "https://img.example.com/dune.jpg")

		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/dune.jpg", url)
		assert.Equal(t, 0, confirmer.Calls)
	})

	t.Run("Rejection Routes Through Confirmation", func(t *testing.T) {
		verifier := &tu.MockVerifier{Verdict: false}
		confirmer := &tu.MockConfirmer{Echo: true}

		url, err := VerifyPoster(ctx, verifier, confirmer, "Dune", "https://img.example.com/dune.jpg")

		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/dune.jpg", url)
		assert.Equal(t, 1, confirmer.Calls)
	})

	t.Run("Cancelled Confirmation Propagates", func(t *testing.T) {
		verifier := &tu.MockVerifier{Verdict: false}
		confirmer := &tu.MockConfirmer{Err: shared.ErrConfirmationCancelled}

		_, err := VerifyPoster(ctx, verifier, confirmer, "Dune", "https://img.example.com/dune.jpg")

		assert.ErrorIs(t, err, shared.ErrConfirmationCancelled)
	})

	t.Run("Empty Candidate Short-Circuits", func(t *testing.T) {
		verifier := &tu.MockVerifier{Verdict: false}
		confirmer := &tu.MockConfirmer{}

		url, err := VerifyPoster(ctx, verifier, confirmer, "Dune", "")

		require.NoError(t, err)
		assert.Empty(t, url)
		assert.Equal(t, 0, verifier.Calls)
		assert.Equal(t, 0, confirmer.Calls)
	})
}

func TestConfirmation(t *testing.T) {
	t.Run("Confirm Resolves Wait", func(t *testing.T) {
		conf := NewConfirmation()
		conf.Confirm("https://img.example.com/dune.jpg")

		url, err := conf.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/dune.jpg", url)
	})

	t.Run("Cancel Resolves Wait With Error", func(t *testing.T) {
		conf := NewConfirmation()
		conf.Cancel()

		_, err := conf.Wait(context.Background())
		assert.ErrorIs(t, err, shared.ErrConfirmationCancelled)
	})

	t.Run("First Resolution Wins", func(t *testing.T) {
		conf := NewConfirmation()
		conf.Confirm("first")
		conf.Cancel()
		conf.Confirm("second")

		url, err := conf.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "first", url)
	})

	t.Run("Context Cancellation Unblocks Wait", func(t *testing.T) {
		conf := NewConfirmation()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := conf.Wait(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Wait From Goroutine", func(t *testing.T) {
		conf := NewConfirmation()

		done := make(chan string, 1)
		go func() {
			url, _ := conf.Wait(context.Background())
			done <- url
		}()

		conf.Confirm("https://img.example.com/dune.jpg")

		select {
		case url := <-done:
			assert.Equal(t, "https://img.example.com/dune.jpg", url)
		case <-time.After(time.Second):
			t.Fatal("Wait did not resolve")
		}
	})
}

func TestPromptConfirmer(t *testing.T) {
	ctx := context.Background()

	t.Run("Yes Confirms Displayed URL", func(t *testing.T) {
		var out strings.Builder
		p := &PromptConfirmer{In: strings.NewReader("y\n"), Out: &out}

		url, err := p.Confirm(ctx, "Dune", "https://img.example.com/dune.jpg")

		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/dune.jpg", url)
		assert.Contains(t, out.String(), "Dune")
		assert.Contains(t, out.String(), "https://img.example.com/dune.jpg")
	})

	t.Run("No Cancels", func(t *testing.T) {
		var out strings.Builder
		p := &PromptConfirmer{In: strings.NewReader("n\n"), Out: &out}

		_, err := p.Confirm(ctx, "Dune", "https://img.example.com/dune.jpg")
		assert.ErrorIs(t, err, shared.ErrConfirmationCancelled)
	})

	t.Run("EOF Cancels", func(t *testing.T) {
		var out strings.Builder
		p := &PromptConfirmer{In: strings.NewReader(""), Out: &out}

		_, err := p.Confirm(ctx, "Dune", "https://img.example.com/dune.jpg")
		assert.ErrorIs(t, err, shared.ErrConfirmationCancelled)
	})

	t.Run("Open Re-Prompts", func(t *testing.T) {
		var out strings.Builder
		opened := ""
		p := &PromptConfirmer{
			In:      strings.NewReader("o\ny\n"),
			Out:     &out,
			OpenURL: func(url string) error { opened = url; return nil },
		}

		url, err := p.Confirm(ctx, "Dune", "https://img.example.com/dune.jpg")

		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/dune.jpg", url)
		assert.Equal(t, "https://img.example.com/dune.jpg", opened)
	})
}
