package patch

import (
	"encoding/json"
	"testing"
)

type payload struct {
	Name  Field[string] `json:"name"`
	Count Field[int]    `json:"count"`
}

func TestField_AbsentNullValue(t *testing.T) {
	var p payload
	if err := json.Unmarshal([]byte(`{"name": null, "count": 3}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !p.Name.Present || p.Name.Value != nil {
		t.Fatalf("name: want present null, got %+v", p.Name)
	}
	if !p.Count.Present || p.Count.Value == nil || *p.Count.Value != 3 {
		t.Fatalf("count: want present 3, got %+v", p.Count)
	}

	var q payload
	if err := json.Unmarshal([]byte(`{}`), &q); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if q.Name.Present || q.Count.Present {
		t.Fatalf("campos ausentes no deben marcar presencia: %+v", q)
	}
}

func TestField_Apply(t *testing.T) {
	dst := "before"
	Field[string]{}.Apply(&dst)
	if dst != "before" {
		t.Fatal("ausente no debe tocar el destino")
	}

	Set("after").Apply(&dst)
	if dst != "after" {
		t.Fatalf("Apply con valor: got %s", dst)
	}

	Null[string]().Apply(&dst)
	if dst != "" {
		t.Fatalf("Apply con null debe limpiar: got %q", dst)
	}
}

func TestField_ApplyPtr(t *testing.T) {
	v := 7
	dst := &v

	Field[int]{}.ApplyPtr(&dst)
	if dst == nil || *dst != 7 {
		t.Fatal("ausente no debe tocar el destino")
	}

	Set(9).ApplyPtr(&dst)
	if dst == nil || *dst != 9 {
		t.Fatal("ApplyPtr con valor")
	}

	Null[int]().ApplyPtr(&dst)
	if dst != nil {
		t.Fatal("ApplyPtr con null debe dejar nil")
	}
}
