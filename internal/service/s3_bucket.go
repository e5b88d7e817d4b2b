package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Service archiva los exports de reservas en un bucket S3
type S3Service struct {
	BucketName string
	Client     *s3.Client
}

// NewS3Service initializes the S3 service
func NewS3Service(region, bucketName string) (*S3Service, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is not set in environment variables")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %v", err)
	}

	client := s3.NewFromConfig(cfg)

	return &S3Service{
		BucketName: bucketName,
		Client:     client,
	}, nil
}

// ArchivarExport sube un export al bucket y devuelve la URL pública del objeto
func (s *S3Service) ArchivarExport(nombre string, contenido []byte, contentType string) (string, error) {
	// Clave única por archivado para no pisar exports anteriores del mismo día
	key := fmt.Sprintf("exports/%s_%s", uuid.New().String(), nombre)

	_, err := s.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(contenido),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("error al subir export a S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.BucketName, key), nil
}
