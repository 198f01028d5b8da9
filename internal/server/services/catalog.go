// Package services holds the server's business logic: seeding and serving
// the template catalog and handing out download links for template archives.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/stackpick/internal/common"
	"github.com/dmitrijs2005/stackpick/internal/dbx"
	"github.com/dmitrijs2005/stackpick/internal/logging"
	sc "github.com/dmitrijs2005/stackpick/internal/server/config"
	"github.com/dmitrijs2005/stackpick/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/stackpick/internal/stack"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	logger      logging.Logger
}

func NewCatalogService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config, logger logging.Logger) *CatalogService {
	return &CatalogService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		logger:      logger.With("module", "catalog_service"),
	}
}

// ArchiveKey is the object key of the zipped template with the given slug.
func ArchiveKey(slug string) string {
	return common.ArchiveKeyPrefix + slug + ".zip"
}

// Seed stores templates as the served catalog. An already populated store
// is left alone unless force is set. The number of stored templates is
// returned, or 0 when seeding was skipped.
//
// The catalog is validated first: structural problems abort with
// common.ErrInvalidCatalog, shadowed duplicates are only logged.
func (s *CatalogService) Seed(ctx context.Context, templates []stack.Template, force bool) (int, error) {
	if len(templates) == 0 {
		return 0, common.ErrEmptyCatalog
	}

	conflicts, err := stack.Validate(templates)
	if err != nil {
		return 0, err
	}
	for _, c := range conflicts {
		s.logger.Warn(ctx, "duplicate stack in catalog", "conflict", c.String())
	}

	n, err := s.repomanager.Templates(s.db).Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 && !force {
		s.logger.Info(ctx, "catalog already seeded", "templates", n)
		return 0, nil
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Templates(tx).ReplaceAll(ctx, templates)
	})
	if err != nil {
		return 0, fmt.Errorf("error seeding catalog: %w", err)
	}

	s.logger.Info(ctx, "catalog seeded", "templates", len(templates))
	return len(templates), nil
}

// List returns the stored catalog in order.
func (s *CatalogService) List(ctx context.Context) ([]stack.Template, error) {
	return s.repomanager.Templates(s.db).List(ctx)
}

// DownloadURL returns a presigned GET URL for the archive of the template
// with the given slug. Unknown slugs yield common.ErrorNotFound.
func (s *CatalogService) DownloadURL(ctx context.Context, slug string) (string, error) {
	if _, err := s.repomanager.Templates(s.db).GetBySlug(ctx, slug); err != nil {
		return "", err
	}
	return s.GetPresignedGetUrl(ctx, ArchiveKey(slug))
}

func (s *CatalogService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *CatalogService) GetPresignedGetUrl(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.PresignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
