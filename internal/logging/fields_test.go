package logging

import (
	"errors"
	"testing"
)

func TestCommonAttrs(t *testing.T) {
	attrs := commonAttrs("teamdle", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "teamdle" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "v1" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
	if got := commonAttrs("", ""); len(got) != 0 {
		t.Fatalf("expected no attrs for empty values, got %+v", got)
	}
}

func TestErrAttr(t *testing.T) {
	attr := ErrAttr(errors.New("catalog missing"))
	if attr.Key != FieldError || attr.Value.String() != "catalog missing" {
		t.Fatalf("unexpected attr %+v", attr)
	}
	if ErrAttr(nil).Key != "" {
		t.Fatal("expected empty attr for nil error")
	}
}
