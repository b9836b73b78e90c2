package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "METADATA_STORE", "OBJECT_STORE", "METADATA_QUOTA_BYTES", "LLM_PROVIDER"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Env != "dev" {
		t.Fatalf("expected env dev, got %s", cfg.Env)
	}
	if cfg.MetadataStoreType != "file" {
		t.Fatalf("expected metadata store file, got %s", cfg.MetadataStoreType)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected object store local, got %s", cfg.ObjectStoreType)
	}
	if cfg.MetadataQuotaBytes != defaultMetadataQuota {
		t.Fatalf("expected default quota, got %d", cfg.MetadataQuotaBytes)
	}
	if cfg.LLMProvider != "gemini" {
		t.Fatalf("expected gemini provider, got %s", cfg.LLMProvider)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("METADATA_STORE", "PG")
	t.Setenv("OBJECT_STORE", "mem")
	t.Setenv("METADATA_QUOTA_BYTES", "1024")
	t.Setenv("LLM_PROVIDER", "none")
	t.Setenv("CORS_ALLOW_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %s", cfg.Env)
	}
	if cfg.MetadataStoreType != "postgres" {
		t.Fatalf("expected postgres, got %s", cfg.MetadataStoreType)
	}
	if cfg.ObjectStoreType != "memory" {
		t.Fatalf("expected memory, got %s", cfg.ObjectStoreType)
	}
	if cfg.MetadataQuotaBytes != 1024 {
		t.Fatalf("expected 1024, got %d", cfg.MetadataQuotaBytes)
	}
	if cfg.LLMProvider != "none" {
		t.Fatalf("expected none, got %s", cfg.LLMProvider)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowOrigin)
	}
}

func TestInvalidQuotaFallsBack(t *testing.T) {
	t.Setenv("METADATA_QUOTA_BYTES", "lots")
	if got := Load().MetadataQuotaBytes; got != defaultMetadataQuota {
		t.Fatalf("expected default quota, got %d", got)
	}
}

func TestLoadS3CompatibleSettings(t *testing.T) {
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_USE_PATH_STYLE", "true")
	t.Setenv("UPLOAD_RATE_PER_MINUTE", "nope")

	cfg := Load()
	if cfg.S3Endpoint != "http://localhost:9000" || !cfg.S3UsePathStyle {
		t.Fatalf("unexpected s3 settings %+v", cfg)
	}
	if cfg.UploadRatePerMinute != 30 {
		t.Fatalf("expected default upload rate, got %d", cfg.UploadRatePerMinute)
	}
}
