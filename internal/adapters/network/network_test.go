// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package network_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/janderssonse/blueprints/internal/adapters/network"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []domain.Template {
	return []domain.Template{
		{ID: "postgres", Name: "Postgres", Version: "16", Tags: []string{"database"}},
		{ID: "redis", Name: "Redis", Version: "7", Tags: []string{"database", "cache"}},
	}
}

func newClient(t *testing.T, baseURL string, opts ...network.Option) *network.HTTPClient {
	t.Helper()

	client := network.NewHTTPClient(baseURL, 5*time.Second, opts...)
	t.Cleanup(client.Close)

	return client
}

func TestIndexLoader_Load(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(t, catalogFixture())

	templates, err := network.NewIndexLoader(newClient(t, srv.URL+"/")).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalogFixture(), templates)
}

func TestIndexLoader_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "server error", body: "oops", code: http.StatusInternalServerError},
		{name: "missing index", body: "", code: http.StatusNotFound},
		{name: "malformed json", body: "[{", code: http.StatusOK},
		{name: "not an array", body: `{"id":"x"}`, code: http.StatusOK},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			srv := testutil.NewCatalogServer(t, nil)
			srv.SetIndexRaw(testCase.body, testCase.code)

			templates, err := network.NewIndexLoader(newClient(t, srv.URL)).Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, templates)

			var loadErr *domain.LoadError
			require.ErrorAs(t, err, &loadErr)
			require.ErrorIs(t, err, domain.ErrIndexUnavailable)
		})
	}
}

func TestIndexLoader_NullIndexIsEmpty(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(t, nil)

	templates, err := network.NewIndexLoader(newClient(t, srv.URL)).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, templates)
	assert.Empty(t, templates)
}

func TestIndexLoader_BodyLimit(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(t, catalogFixture())

	_, err := network.NewIndexLoader(newClient(t, srv.URL, network.WithMaxBodyBytes(10))).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrBodyTooLarge)
}

func TestDetailFetcher_AbsentArtifact(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(t, catalogFixture())
	srv.SetFile("postgres", domain.ConfigFile, "x: 1")

	detail, err := network.NewDetailFetcher(newClient(t, srv.URL)).FetchDetail(context.Background(), "postgres")
	require.NoError(t, err)

	assert.Nil(t, detail.Compose)
	require.NotNil(t, detail.Config)
	assert.Equal(t, "x: 1", *detail.Config)
}

func TestDetailFetcher_BothPresentAndBothAbsent(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(t, catalogFixture())
	srv.SetFile("redis", domain.ComposeFile, "services:\n  redis: {}\n")
	srv.SetFile("redis", domain.ConfigFile, "variables: {}\n")
	srv.SetStatus("postgres", domain.ComposeFile, http.StatusInternalServerError)

	fetcher := network.NewDetailFetcher(newClient(t, srv.URL))

	detail, err := fetcher.FetchDetail(context.Background(), "redis")
	require.NoError(t, err)
	assert.Equal(t, "services:\n  redis: {}\n", detail.ComposeText())
	assert.Equal(t, "variables: {}\n", detail.ConfigText())

	detail, err = fetcher.FetchDetail(context.Background(), "postgres")
	require.NoError(t, err)
	assert.True(t, detail.Empty())
}

func TestDetailFetcher_EmptyID(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(t, nil)

	_, err := network.NewDetailFetcher(newClient(t, srv.URL)).FetchDetail(context.Background(), " ")
	require.ErrorIs(t, err, domain.ErrInvalidTemplateID)
	assert.Zero(t, srv.Hits())
}

func TestDetailFetcher_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(t, nil)
	baseURL := srv.URL
	srv.Close()

	_, err := network.NewDetailFetcher(newClient(t, baseURL)).FetchDetail(context.Background(), "postgres")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "postgres", fetchErr.TemplateID)
	require.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestDetailFetcher_Cancellation(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(t, catalogFixture())
	srv.SetFile("postgres", domain.ConfigFile, "x: 1")
	release := srv.Block("postgres", domain.ComposeFile)
	t.Cleanup(release)

	fetcher := network.NewDetailFetcher(newClient(t, srv.URL))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		_, err := fetcher.FetchDetail(ctx, "postgres")
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, domain.ErrFetchFailed)
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not observe cancellation")
	}
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	err := &network.StatusError{URL: "http://h/meta.json", Code: 404}
	assert.Equal(t, "GET http://h/meta.json: status 404", err.Error())
	assert.Equal(t, "Not found on the catalog server", domain.GetErrorInfo(err, false).Message)
}
