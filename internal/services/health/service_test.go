package health

import (
	"context"
	"errors"
	"testing"
)

func TestStatusWithoutChecks(t *testing.T) {
	report := NewService(nil).Status(context.Background())
	if !report.OK || report.Checks != nil {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestStatusReportsFailingCheck(t *testing.T) {
	svc := NewService(map[string]Check{
		"metadata": func(context.Context) error { return nil },
		"blobs":    func(context.Context) error { return errors.New("bucket missing") },
	})

	report := svc.Status(context.Background())
	if report.OK {
		t.Fatalf("expected not ok")
	}
	if report.Checks["metadata"] != "ok" {
		t.Fatalf("unexpected metadata status %q", report.Checks["metadata"])
	}
	if report.Checks["blobs"] != "bucket missing" {
		t.Fatalf("unexpected blobs status %q", report.Checks["blobs"])
	}
}
