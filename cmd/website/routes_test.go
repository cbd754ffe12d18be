package main

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/adampresley/adamgokit/mux"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/configuration"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/home"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/lightbox"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSite(t *testing.T) *httptest.Server {
	t.Helper()

	loader := services.NewFileMetadataLoader(services.FileMetadataLoaderConfig{
		FS:   dataFS,
		Path: "data/photoMetaData.json",
	})

	photos, err := loader.Load(context.Background())
	require.NoError(t, err)

	photoService := services.NewPhotoService(services.PhotoServiceConfig{
		BaseURL: "https://cdn.example.com/photos",
		Photos:  photos,
	})

	store := lightbox.NewSelectionStore(lightbox.SelectionStoreConfig{
		PhotoService:   photoService,
		SessionService: lightbox.NewSelectionSession("routes-test-secret"),
	})

	siteRenderer, err := newRenderer(appFS)
	require.NoError(t, err)

	homeHandlers := home.NewHomeController(home.HomeControllerConfig{
		Config:         &configuration.Config{SiteTitle: "Photography"},
		PhotoService:   photoService,
		Renderer:       siteRenderer,
		SelectionStore: store,
	})

	lightboxHandlers := lightbox.NewLightboxController(lightbox.LightboxControllerConfig{
		Renderer:       siteRenderer,
		SelectionStore: store,
	})

	routerConfig := mux.RouterConfig{
		Address:              "localhost:0",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
	}

	server := httptest.NewServer(mux.SetupRouter(routerConfig, newRoutes(homeHandlers, lightboxHandlers)))
	t.Cleanup(server.Close)

	return server
}

func visit(t *testing.T, client *http.Client, method, target string, form url.Values, htmx bool) (int, string) {
	t.Helper()

	var body io.Reader

	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if htmx {
		req.Header.Set("Hx-Request", "true")
	}

	res, err := client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(b)
}

func TestSiteRoutes(t *testing.T) {
	server := newTestSite(t)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client := &http.Client{Jar: jar}

	t.Run("heartbeat", func(t *testing.T) {
		status, body := visit(t, client, http.MethodGet, server.URL+"/heartbeat", nil, false)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "OK", body)
	})

	t.Run("landing page lists the gallery", func(t *testing.T) {
		status, body := visit(t, client, http.MethodGet, server.URL+"/", nil, false)

		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "<!DOCTYPE html>")
		assert.Equal(t, 4, strings.Count(body, `class="photo-tile"`))
		assert.Contains(t, body, `src="https://cdn.example.com/photos/golden-gate-fog.jpg"`)
		assert.NotContains(t, body, "painted-ladies.jpg")
		assert.NotContains(t, body, "headshot.jpg")
		assert.Contains(t, body, `<div id="lightbox"></div>`)
	})

	t.Run("click, escape, click, close", func(t *testing.T) {
		status, body := visit(t, client, http.MethodGet, server.URL+"/photos/half-dome-dusk.jpg", nil, true)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `&ldquo;Last Light&rdquo;`)
		assert.Contains(t, body, "Yosemite National Park")

		status, body = visit(t, client, http.MethodPost, server.URL+"/gallery/keys", url.Values{"key": {"Escape"}}, true)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `<div id="lightbox"></div>`)

		status, body = visit(t, client, http.MethodGet, server.URL+"/photos/bixby-bridge.jpg", nil, true)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `id="lightbox" class="lightbox"`)
		assert.NotContains(t, body, "lightbox-title")

		status, body = visit(t, client, http.MethodPost, server.URL+"/gallery/close", url.Values{}, true)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `<div id="lightbox"></div>`)
	})

	t.Run("plain click follows the redirect to the deep link", func(t *testing.T) {
		status, body := visit(t, client, http.MethodGet, server.URL+"/photos/emerald-bay.jpg", nil, false)

		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, `&ldquo;Still Water&rdquo;`)
	})

	t.Run("unknown photo", func(t *testing.T) {
		status, _ := visit(t, client, http.MethodGet, server.URL+"/photos/nope.jpg", nil, true)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("unknown page", func(t *testing.T) {
		status, _ := visit(t, client, http.MethodGet, server.URL+"/nope", nil, false)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("static content", func(t *testing.T) {
		status, _ := visit(t, client, http.MethodGet, server.URL+"/static/css/site.css", nil, false)
		assert.Equal(t, http.StatusOK, status)
	})
}
