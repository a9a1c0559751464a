package fetch

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/dtnitsch/opengraph-parser/models"
	"github.com/dtnitsch/opengraph-parser/pkg/db"
	"github.com/dtnitsch/opengraph-parser/pkg/enrich"
	"github.com/dtnitsch/opengraph-parser/pkg/fetcher"
	"github.com/dtnitsch/opengraph-parser/pkg/opengraph"
)

// run fetches every configured URL with a bounded worker pool and returns the
// results in input order.
func run(ctx context.Context, logger *slog.Logger, config *models.FetchConfig, opts []opengraph.Option, database *db.DB) []models.PageResult {
	f := fetcher.NewFetcher(fetcher.WithUserAgent(config.UserAgent), fetcher.WithTimeout(config.Timeout))
	opts = append(opts[:len(opts):len(opts)], opengraph.WithFetcher(f))

	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 4
	}

	logger.Info("Starting concurrent fetch phase", "url_count", len(config.URLs), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.URLs))
	results := make(chan Result, len(config.URLs))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, config, opts, database, &wg, jobs, results)
	}

	for i, rawURL := range config.URLs {
		jobs <- Job{Index: i, URL: rawURL}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All fetch workers finished")

	ordered := make([]models.PageResult, len(config.URLs))
	for r := range results {
		ordered[r.Index] = r.Output
	}
	return ordered
}

func worker(ctx context.Context, id int, logger *slog.Logger, config *models.FetchConfig, opts []opengraph.Option, database *db.DB, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Debug("Worker started job", "worker_id", id, "url", job.URL)
		out := processURL(ctx, logger, job.URL, config.Enrich, opts)

		if database != nil && config.Save {
			if err := record(database, job.URL, config.Mode, out); err != nil {
				logger.Error("Error saving result", "worker_id", id, "url", job.URL, "error", err)
			}
		}

		results <- Result{Index: job.Index, Output: out}
		logger.Debug("Worker finished job", "worker_id", id, "url", job.URL, "status", out.Status)
	}
}

func processURL(ctx context.Context, logger *slog.Logger, url string, withEnrich bool, opts []opengraph.Option) models.PageResult {
	res := opengraph.FetchDetailed(ctx, url, opts...)
	if res.Err != nil {
		errorType, statusCode := classifyError(res.Err)
		logger.Warn("Error fetching URL", "url", url, "error", res.Err, "error_type", errorType)
		return models.PageResult{
			URL:        url,
			Status:     models.StatusFailed,
			StatusCode: statusCode,
			Error:      res.Err.Error(),
			ErrorType:  errorType,
		}
	}

	out := models.NewPageResult(res.Object, res.OK)
	out.URL = url
	// the fetcher only returns bodies for 2xx responses
	out.StatusCode = http.StatusOK

	if withEnrich {
		summary, err := enrich.FromHTML(url, res.Body)
		if err != nil {
			logger.Warn("Error enriching page", "url", url, "error", err)
		} else {
			out.Enrichment = summary
		}
	}
	return out
}

// classifyError maps a transport error to an error type and HTTP status.
func classifyError(err error) (string, int) {
	var statusErr *fetcher.StatusError
	var netErr net.Error
	switch {
	case errors.As(err, &statusErr):
		return "status_error", statusErr.StatusCode
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return "timeout", 0
	case errors.Is(err, context.Canceled):
		return "canceled", 0
	default:
		return "fetch_error", 0
	}
}

// record stores the access and the validity verdict. Accepted objects also
// replace the stored properties; a rejected fetch only flips "valid" so the
// last accepted properties stay queryable.
func record(database *db.DB, url string, mode opengraph.Mode, out models.PageResult) error {
	urlID, err := database.InsertURL(url)
	if err != nil {
		return err
	}
	fetched := out.Status != models.StatusFailed
	if err := database.RecordAccess(urlID, out.StatusCode, out.ErrorType, fetched); err != nil {
		return err
	}
	if !fetched {
		return nil
	}

	if out.Properties == nil {
		if err := database.SetURLMetadata(urlID, db.NamespaceClass, "valid", "false"); err != nil {
			return err
		}
		return database.SetURLMetadata(urlID, db.NamespaceClass, "mode", mode.String())
	}

	obj := out.Properties
	pairs := make([]db.KeyValue, 0, obj.Len())
	for _, k := range obj.Keys() {
		pairs = append(pairs, db.KeyValue{Key: k, Value: obj.Text(k)})
	}
	if err := database.ReplaceURLMetadata(urlID, db.NamespaceOpenGraph, pairs); err != nil {
		return err
	}
	return database.ReplaceURLMetadata(urlID, db.NamespaceClass, []db.KeyValue{
		{Key: "type", Value: out.Type},
		{Key: "schema", Value: out.Schema},
		{Key: "valid", Value: strconv.FormatBool(obj.ValidFor(mode))},
		{Key: "mode", Value: mode.String()},
	})
}
