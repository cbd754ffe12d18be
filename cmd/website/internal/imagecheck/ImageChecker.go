package imagecheck

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/services"
)

type ImageChecker interface {
	Check() Report
}

type ImageCheckerConfig struct {
	HttpClient   *http.Client
	MaxWorkers   int
	PhotoService services.PhotoServicer
	ShutdownCtx  context.Context
}

type ImageCheckerService struct {
	httpClient   *http.Client
	maxWorkers   int
	photoService services.PhotoServicer
	shutdownCtx  context.Context
}

/*
Report lists the gallery photos whose display URL did not answer with a
success status.
*/
type Report struct {
	Checked int
	Missing []string
}

func NewImageCheckerService(config ImageCheckerConfig) ImageCheckerService {
	httpClient := config.HttpClient

	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Second * 15}
	}

	maxWorkers := config.MaxWorkers

	if maxWorkers < 1 {
		maxWorkers = 1
	}

	shutdownCtx := config.ShutdownCtx

	if shutdownCtx == nil {
		shutdownCtx = context.Background()
	}

	return ImageCheckerService{
		httpClient:   httpClient,
		maxWorkers:   maxWorkers,
		photoService: config.PhotoService,
		shutdownCtx:  shutdownCtx,
	}
}

func (c ImageCheckerService) Check() Report {
	var (
		lock   sync.Mutex
		report Report
	)

	photos := c.photoService.Gallery()
	slog.Info("checking gallery images...", "numImages", len(photos))

	pool := pond.NewPool(c.maxWorkers, pond.WithContext(c.shutdownCtx))

	for _, photo := range photos {
		displayURL := c.photoService.DisplayURL(photo)

		pool.Submit(func() {
			err := c.head(displayURL)

			lock.Lock()
			defer lock.Unlock()

			report.Checked++

			if err != nil {
				slog.Warn("gallery image is not reachable", "filename", photo.Filename, "url", displayURL, "error", err)
				report.Missing = append(report.Missing, photo.Filename)
			}
		})
	}

	_ = pool.Stop().Wait()

	slog.Info("gallery image check finished", "checked", report.Checked, "missing", len(report.Missing))
	return report
}

func (c ImageCheckerService) head(url string) error {
	var (
		err      error
		request  *http.Request
		response *http.Response
	)

	if request, err = http.NewRequestWithContext(c.shutdownCtx, http.MethodHead, url, nil); err != nil {
		return fmt.Errorf("error building request for '%s': %w", url, err)
	}

	if response, err = c.httpClient.Do(request); err != nil {
		return fmt.Errorf("error requesting '%s': %w", url, err)
	}

	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("unexpected status for '%s': %s", url, response.Status)
	}

	return nil
}
