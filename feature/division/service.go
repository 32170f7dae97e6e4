package division

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"district-sync/core/reconcile"
	"district-sync/core/source"
	"district-sync/core/storage"
	"district-sync/feature/division/report"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service runs a reconciliation.
type Service struct {
	gold      reconcile.Source
	goldLabel string
	targets   []reconcile.Source
	client    storage.Client
	logger    *zap.Logger
	stdout    io.Writer
	runID     string
}

// Option customises a Service.
type Option func(*Service)

// WithStdout replaces the console writer the report is mirrored to.
func WithStdout(w io.Writer) Option {
	return func(s *Service) { s.stdout = w }
}

// WithStorage sets the client used for s3:// report paths.
func WithStorage(client storage.Client) Option {
	return func(s *Service) { s.client = client }
}

// WithRunID tags the JSON report.
func WithRunID(id string) Option {
	return func(s *Service) { s.runID = id }
}

// NewService creates a new reconciliation service.
func NewService(gold reconcile.Source, goldLabel string, targets []reconcile.Source, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		gold:      gold,
		goldLabel: goldLabel,
		targets:   targets,
		logger:    logger,
		stdout:    os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Output names where the reports go.
type Output struct {
	// ReportPath receives the text report (local path or s3:// URL).
	ReportPath string
	// JSONPath receives the JSON report when not empty.
	JSONPath string
}

// Run loads all datasets, compares every target against the gold list and
// writes the reports. A missing gold list is returned as an error; a missing
// target is logged and compared as empty.
func (s *Service) Run(ctx context.Context, out Output) ([]*reconcile.Report, error) {
	s.logger.Info("Reading reference data", zap.String("source", s.gold.Name()))
	gold, err := s.gold.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load gold list: %w", err)
	}
	s.logger.Info("Reference data loaded",
		zap.Int("provinces", len(gold)),
		zap.Int("districts", gold.DistrictCount()),
	)

	datasets := make([]reconcile.Dataset, len(s.targets))
	for i, target := range s.targets {
		datasets[i], err = s.loadTarget(ctx, target)
		if err != nil {
			return nil, err
		}
	}

	w, err := s.create(ctx, out.ReportPath)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	sink := report.NewSink(s.stdout, w)

	reports := make([]*reconcile.Report, len(s.targets))
	for i, target := range s.targets {
		reports[i] = reconcile.Compare(target.Name(), gold, datasets[i])
		report.Render(sink, reports[i], s.goldLabel)

		sum := reports[i].Summary
		s.logger.Info("Target compared",
			zap.String("target", target.Name()),
			zap.Int("critical", sum.Critical),
			zap.Int("missing", sum.Missing),
			zap.Int("extra", sum.Extra),
			zap.Int("advice", sum.Advice),
		)
	}
	if err := sink.Err(); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	fmt.Fprintf(s.stdout, "\nRapor '%s' dosyasına yazıldı.\n", out.ReportPath)

	if out.JSONPath != "" {
		if err := s.writeJSON(ctx, out.JSONPath, reports); err != nil {
			return nil, err
		}
		s.logger.Info("Detailed JSON report saved", zap.String("file", out.JSONPath))
	}

	return reports, nil
}

// loadTarget loads a target, treating a missing input as an empty dataset.
func (s *Service) loadTarget(ctx context.Context, target reconcile.Source) (reconcile.Dataset, error) {
	s.logger.Info("Reading target", zap.String("source", target.Name()))

	data, err := target.Load(ctx)
	if errors.Is(err, source.ErrNotFound) {
		s.logger.Warn("File not found, comparing as empty", zap.String("source", target.Name()), zap.Error(err))
		return make(reconcile.Dataset), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", target.Name(), err)
	}

	s.logger.Info("Target loaded",
		zap.String("source", target.Name()),
		zap.Int("provinces", len(data)),
		zap.Int("districts", data.DistrictCount()),
	)
	return data, nil
}

// writeJSON writes the JSON document for reports to path.
func (s *Service) writeJSON(ctx context.Context, path string, reports []*reconcile.Report) error {
	w, err := s.create(ctx, path)
	if err != nil {
		return err
	}
	defer w.Close()

	doc := report.Document{
		RunID:       s.runID,
		Gold:        s.goldLabel,
		GeneratedAt: time.Now().UTC(),
		Reports:     reports,
	}
	if err := report.WriteJSON(w, doc); err != nil {
		return err
	}
	return w.Close()
}

// create opens path for writing: a local file, or a buffer uploaded to object
// storage on Close. Close is safe to call more than once.
func (s *Service) create(ctx context.Context, path string) (io.WriteCloser, error) {
	if !storage.IsURL(path) {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		return &onceCloser{WriteCloser: f}, nil
	}

	bucket, key, ok := storage.SplitURL(path)
	if !ok {
		return nil, fmt.Errorf("invalid storage path %q", path)
	}
	if s.client == nil {
		return nil, fmt.Errorf("storage client not configured for %s", path)
	}
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}
	return &onceCloser{WriteCloser: &objectWriter{ctx: ctx, client: s.client, bucket: bucket, key: key}}, nil
}

// objectWriter buffers a report and uploads it on Close.
type objectWriter struct {
	ctx    context.Context
	client storage.Client
	bucket string
	key    string
	buf    bytes.Buffer
}

func (w *objectWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *objectWriter) Close() error {
	_, err := w.client.PutObject(w.ctx, w.bucket, w.key, bytes.NewReader(w.buf.Bytes()), int64(w.buf.Len()), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", w.bucket, w.key, err)
	}
	return nil
}

// onceCloser returns the first Close result on every call.
type onceCloser struct {
	io.WriteCloser
	closed bool
	err    error
}

func (c *onceCloser) Close() error {
	if c.closed {
		return c.err
	}
	c.closed = true
	c.err = c.WriteCloser.Close()
	return c.err
}
