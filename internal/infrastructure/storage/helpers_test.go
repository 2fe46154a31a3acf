package storage_test

import "github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/config"

func s3Config(publicURL string) config.S3Config {
	return config.S3Config{
		Region:          "us-east-1",
		Bucket:          "bucket",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		PublicURL:       publicURL,
	}
}
