package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/archigen/archigen/pkg/doccheck"
	"github.com/archigen/archigen/pkg/model"
)

func writeModelFile(t *testing.T, m model.Model) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := model.WriteModelFile(m, path); err != nil {
		t.Fatalf("WriteModelFile() error = %v", err)
	}
	return path
}

func testModel(t *testing.T) model.Model {
	t.Helper()
	actor, err := model.NewElement(model.TypeBusinessActor, "a1", "Customer")
	if err != nil {
		t.Fatalf("NewElement() error = %v", err)
	}
	proc, err := model.NewElement(model.TypeBusinessProcess, "p1", "Order Handling")
	if err != nil {
		t.Fatalf("NewElement() error = %v", err)
	}
	rel, err := model.NewRelationship(model.RelTriggering, "r1", "a1", "p1")
	if err != nil {
		t.Fatalf("NewRelationship() error = %v", err)
	}
	return model.Model{
		Elements:      []model.Element{actor, proc},
		Relationships: []model.Relationship{rel},
	}
}

func testContext() context.Context {
	return withLogger(context.Background(), newLogger(&bytes.Buffer{}, log.ErrorLevel))
}

func TestRunExportWritesDocument(t *testing.T) {
	path := writeModelFile(t, testModel(t))
	out := filepath.Join(t.TempDir(), "out.xml")

	opts := exportOpts{output: out, name: "Test Model", views: true}
	if err := runExport(testContext(), path, &opts); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	doc := string(data)
	if !strings.Contains(doc, "Test Model") {
		t.Error("document should contain the model name")
	}
	if report := doccheck.Check(doc); !report.Valid() {
		t.Errorf("exported document has errors: %v", report.Errors)
	}
}

func TestRunExportCacheRoundTrip(t *testing.T) {
	path := writeModelFile(t, testModel(t))
	out := filepath.Join(t.TempDir(), "out.xml")
	cacheDir := t.TempDir()

	opts := exportOpts{output: out, modelID: "model-1", cacheDir: cacheDir}
	if err := runExport(testContext(), path, &opts); err != nil {
		t.Fatalf("first runExport() error = %v", err)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	// Second run should serve the cached document byte for byte.
	if err := runExport(testContext(), path, &opts); err != nil {
		t.Fatalf("second runExport() error = %v", err)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("cached export should match the original document")
	}
}

func TestRunExportStrictFailure(t *testing.T) {
	m := testModel(t)
	dangling, err := model.NewRelationship(model.RelServing, "r2", "a1", "ghost")
	if err != nil {
		t.Fatalf("NewRelationship() error = %v", err)
	}
	m.Relationships = append(m.Relationships, dangling)
	path := writeModelFile(t, m)

	opts := exportOpts{strict: true, output: filepath.Join(t.TempDir(), "out.xml")}
	if err := runExport(testContext(), path, &opts); err == nil {
		t.Error("runExport() should fail on orphaned references in strict mode")
	}
}

func TestRunValidate(t *testing.T) {
	path := writeModelFile(t, testModel(t))
	if err := runValidate(testContext(), path, ""); err != nil {
		t.Errorf("runValidate() error = %v", err)
	}
}

func TestRunValidateViolation(t *testing.T) {
	m := testModel(t)
	// Access is not permitted between these types by the default matrix.
	bad, err := model.NewRelationship(model.RelAccess, "r9", "p1", "a1")
	if err != nil {
		t.Fatalf("NewRelationship() error = %v", err)
	}
	m.Relationships = append(m.Relationships, bad)
	path := writeModelFile(t, m)

	err = runValidate(testContext(), path, "")
	if err == nil {
		t.Fatal("runValidate() should fail on a matrix violation")
	}
	if !strings.Contains(err.Error(), "1 relationship(s) violate") {
		t.Errorf("error %q should report the violation count", err)
	}
}

func TestRunCheck(t *testing.T) {
	path := writeModelFile(t, testModel(t))
	out := filepath.Join(t.TempDir(), "out.xml")
	opts := exportOpts{output: out}
	if err := runExport(testContext(), path, &opts); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	if err := runCheck(testContext(), out); err != nil {
		t.Errorf("runCheck() error = %v", err)
	}
}

func TestRunCheckMissingFile(t *testing.T) {
	if err := runCheck(testContext(), filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("runCheck() should fail for a missing file")
	}
}

func TestRunCheckPathWithVerbCharacters(t *testing.T) {
	// Percent signs in a path must survive into the error message verbatim.
	path := filepath.Join(t.TempDir(), "100%d.xml")
	err := runCheck(testContext(), path)
	if err == nil {
		t.Fatal("runCheck() should fail for a missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should contain the literal path %q", err, path)
	}
	if strings.Contains(err.Error(), "%!") {
		t.Errorf("error %q contains a mangled format verb", err)
	}
}

func TestRouterHealthz(t *testing.T) {
	r := newRouter(newLogger(&bytes.Buffer{}, log.ErrorLevel))

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Errorf("healthz status = %d, want 200", rec.Code)
	}
}

func TestRouterExport(t *testing.T) {
	r := newRouter(newLogger(&bytes.Buffer{}, log.ErrorLevel))

	modelJSON, err := model.MarshalModel(testModel(t))
	if err != nil {
		t.Fatalf("MarshalModel() error = %v", err)
	}
	body, err := json.Marshal(map[string]any{
		"model":   json.RawMessage(modelJSON),
		"options": map[string]any{"model_name": "API Model"},
	})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	req := httptest.NewRequest("POST", "/api/export", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("export status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp exportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !strings.Contains(resp.Document, "API Model") {
		t.Error("response document should contain the model name")
	}
}

func TestRouterExportBadBody(t *testing.T) {
	r := newRouter(newLogger(&bytes.Buffer{}, log.ErrorLevel))

	req := httptest.NewRequest("POST", "/api/export", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != 400 {
		t.Errorf("export status = %d, want 400", rec.Code)
	}
}

func TestRouterValidate(t *testing.T) {
	r := newRouter(newLogger(&bytes.Buffer{}, log.ErrorLevel))

	modelJSON, err := model.MarshalModel(testModel(t))
	if err != nil {
		t.Fatalf("MarshalModel() error = %v", err)
	}
	body, err := json.Marshal(map[string]any{"model": json.RawMessage(modelJSON)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	req := httptest.NewRequest("POST", "/api/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("validate status = %d, want 200", rec.Code)
	}
	var resp validateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !resp.Valid {
		t.Errorf("model should validate, violations: %v", resp.Violations)
	}
}
