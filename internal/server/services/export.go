package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/gratilog/internal/common"
	sc "github.com/dmitrijs2005/gratilog/internal/server/config"
	"github.com/dmitrijs2005/gratilog/internal/server/models"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/repomanager"
)

const exportURLValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ExportResult points at an uploaded export.
type ExportResult struct {
	URL       string
	ExpiresAt time.Time
	Count     int
}

type exportedEntry struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	MoodRating    int       `json:"mood_rating"`
	IsPublic      bool      `json:"is_public"`
	Appreciations uint64    `json:"appreciations"`
	CreatedAt     time.Time `json:"created_at"`
}

type exportDocument struct {
	UserID     string          `json:"user_id"`
	ExportedAt time.Time       `json:"exported_at"`
	Entries    []exportedEntry `json:"entries"`
}

// ExportService writes a user's journal to object storage as JSON and hands
// back a short-lived download link.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	now         func() time.Time
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *ExportService {
	return &ExportService{db: db, repomanager: m, config: cfg, now: time.Now}
}

func ExportStorageKey(userID string, d time.Time) string {
	return fmt.Sprintf("exports/%s/%d/%d/%d/%v.json", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getS3Client(ctx context.Context) (*s3.Client, error) {
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

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func buildExportDocument(userID string, rows []*models.Entry, at time.Time) exportDocument {
	doc := exportDocument{UserID: userID, ExportedAt: at.UTC(), Entries: make([]exportedEntry, 0, len(rows))}
	for _, e := range rows {
		doc.Entries = append(doc.Entries, exportedEntry{
			ID:            e.ID,
			Title:         e.Title,
			Content:       e.Content,
			Category:      e.Category,
			MoodRating:    e.MoodRating,
			IsPublic:      e.IsPublic,
			Appreciations: e.Appreciations,
			CreatedAt:     e.CreatedAt.UTC(),
		})
	}
	return doc
}

// Export uploads the caller's entries and presigns a GET for them.
func (s *ExportService) Export(ctx context.Context, userID string) (*ExportResult, error) {
	if !s.config.ExportEnabled() {
		return nil, common.ErrorExportNotConfigured
	}

	rows, err := s.repomanager.Entries(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading entries: %w", err)
	}

	now := s.now()
	body, err := json.MarshalIndent(buildExportDocument(userID, rows, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding export: %w", err)
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, err
	}

	key := ExportStorageKey(userID, now)
	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return nil, fmt.Errorf("error uploading export: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(s.config.S3Bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(`attachment; filename="gratilog-export.json"`),
	}, s3.WithPresignExpires(exportURLValidity))
	if err != nil {
		return nil, fmt.Errorf("error presigning export: %w", err)
	}

	return &ExportResult{URL: req.URL, ExpiresAt: now.Add(exportURLValidity), Count: len(rows)}, nil
}
