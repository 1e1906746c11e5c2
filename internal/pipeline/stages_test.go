package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/antivirus"
	"github.com/docshelf/docshelf/internal/classifier"
	"github.com/docshelf/docshelf/internal/common"
	"github.com/docshelf/docshelf/internal/entity"
	"github.com/docshelf/docshelf/internal/extract"
)

// memStore is an in-memory content store for stage tests.
type memStore struct {
	objects map[string][]byte
	nextID  int
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (m *memStore) Store(ctx context.Context, r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.nextID++
	id := fmt.Sprintf("content-%d%s", m.nextID, filepath.Ext(filename))
	m.objects[id] = data
	return id, nil
}

func (m *memStore) Get(ctx context.Context, contentID string) (io.ReadCloser, error) {
	data, ok := m.objects[contentID]
	if !ok {
		return nil, fmt.Errorf("content %s not found", contentID)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStore) Size(ctx context.Context, contentID string) (int64, error) {
	data, ok := m.objects[contentID]
	if !ok {
		return 0, fmt.Errorf("content %s not found", contentID)
	}
	return int64(len(data)), nil
}

func (m *memStore) DetectMimeType(ctx context.Context, contentID, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return "text/plain", nil
	case ".pdf":
		return "application/pdf", nil
	case ".png":
		return "image/png", nil
	default:
		return "application/octet-stream", nil
	}
}

func (m *memStore) Delete(ctx context.Context, contentID string) error {
	delete(m.objects, contentID)
	return nil
}

type fakeScanner struct {
	result antivirus.ScanResult
	err    error
}

func (f *fakeScanner) Scan(ctx context.Context, r io.Reader) (antivirus.ScanResult, error) {
	return f.result, f.err
}

func (f *fakeScanner) Ping(ctx context.Context) error { return f.err }

// fakeDocs implements repository.DocumentRepository over a map.
type fakeDocs struct {
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[uuid.UUID]*entity.Document)}
}

func (f *fakeDocs) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	copied := *doc
	copied.ID = uuid.New()
	copied.CreatedAt = time.Now()
	f.docs[copied.ID] = &copied
	return &copied, nil
}

func (f *fakeDocs) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}
	copied := *doc
	return &copied, nil
}

func (f *fakeDocs) Update(ctx context.Context, doc *entity.Document) error {
	if _, ok := f.docs[doc.ID]; !ok {
		return fmt.Errorf("document %s not found", doc.ID)
	}
	copied := *doc
	f.docs[doc.ID] = &copied
	return nil
}

func (f *fakeDocs) SetCurrentVersion(ctx context.Context, docID, versionID uuid.UUID, label string) error {
	doc, ok := f.docs[docID]
	if !ok {
		return fmt.Errorf("document %s not found", docID)
	}
	doc.CurrentVersion = &versionID
	doc.VersionLabel = label
	return nil
}

func (f *fakeDocs) UpdatePreviewStatus(ctx context.Context, docID uuid.UUID, status constants.PreviewStatus, reason string) error {
	doc, ok := f.docs[docID]
	if !ok {
		return fmt.Errorf("document %s not found", docID)
	}
	doc.PreviewStatus = status
	doc.PreviewReason = reason
	return nil
}

func (f *fakeDocs) FindByContentHash(ctx context.Context, hash string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, doc := range f.docs {
		if doc.ContentHash == hash {
			copied := *doc
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeVersions struct {
	versions []*entity.Version
}

func (f *fakeVersions) MaxVersionNumber(ctx context.Context, documentID uuid.UUID) (int, error) {
	max := 0
	for _, v := range f.versions {
		if v.DocumentID == documentID && v.VersionNumber > max {
			max = v.VersionNumber
		}
	}
	return max, nil
}

func (f *fakeVersions) GetByNumber(ctx context.Context, documentID uuid.UUID, number int) (*entity.Version, error) {
	for _, v := range f.versions {
		if v.DocumentID == documentID && v.VersionNumber == number {
			return v, nil
		}
	}
	return nil, fmt.Errorf("version %d not found", number)
}

func (f *fakeVersions) Create(ctx context.Context, v *entity.Version) (*entity.Version, error) {
	copied := *v
	copied.ID = uuid.New()
	f.versions = append(f.versions, &copied)
	return &copied, nil
}

type fakeClassifier struct {
	available  bool
	prediction *classifier.Prediction
	err        error
}

func (f *fakeClassifier) IsAvailable(ctx context.Context) bool { return f.available }

func (f *fakeClassifier) Classify(ctx context.Context, text string) (*classifier.Prediction, error) {
	return f.prediction, f.err
}

type fakeCategories struct {
	created []string
}

func (f *fakeCategories) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	return nil, fmt.Errorf("category %s not found", name)
}

func (f *fakeCategories) FindOrCreate(ctx context.Context, name, description string) (*entity.Category, error) {
	f.created = append(f.created, name)
	return &entity.Category{ID: uuid.New(), Name: name}, nil
}

func avConfig(enabled, failOpen bool) common.AntivirusConfig {
	return common.AntivirusConfig{Enabled: enabled, FailOpen: failOpen}
}

func TestCleanTextUploadEndToEnd(t *testing.T) {
	store := newMemStore()
	docs := newFakeDocs()
	versions := &fakeVersions{}
	registry := extract.NewRegistry(common.ExtractConfig{MaxTextLength: 1 << 20}, testLogger())

	stages := []Stage{
		NewContentStorageStage(store, testLogger()),
		NewVirusScanStage(&fakeScanner{}, store, avConfig(true, true), testLogger()),
		NewTextExtractStage(registry, store, testLogger()),
		NewPersistenceStage(docs, testLogger()),
		NewInitialVersionStage(docs, versions, testLogger()),
	}
	orch := NewOrchestrator(stages, testLogger())

	pc := NewContext(strings.NewReader("quarterly invoice for ACME corp"), "invoice.txt", nil, "alice")
	outcome := orch.Run(context.Background(), pc)

	if !outcome.Success {
		t.Fatalf("outcome not successful, errors: %v", outcome.Errors)
	}
	if outcome.ContentID == "" {
		t.Error("content reference not set")
	}
	if pc.MimeType != "text/plain" {
		t.Errorf("mime type = %q, want text/plain", pc.MimeType)
	}
	if pc.VersionLabel != "1.0" {
		t.Errorf("version label = %q, want 1.0", pc.VersionLabel)
	}
	if len(outcome.Errors) != 0 {
		t.Errorf("unexpected errors: %v", outcome.Errors)
	}
	if pc.Text != "quarterly invoice for ACME corp" {
		t.Errorf("extracted text = %q", pc.Text)
	}
}

func TestDuplicateContentIsRecorded(t *testing.T) {
	store := newMemStore()
	docs := newFakeDocs()

	stages := []Stage{
		NewContentStorageStage(store, testLogger()),
		NewPersistenceStage(docs, testLogger()),
	}
	orch := NewOrchestrator(stages, testLogger())

	first := NewContext(strings.NewReader("same bytes"), "a.txt", nil, "alice")
	firstOutcome := orch.Run(context.Background(), first)
	if !firstOutcome.Success {
		t.Fatalf("first upload failed: %v", firstOutcome.Errors)
	}
	firstDoc, err := docs.GetByID(context.Background(), firstOutcome.DocumentID)
	if err != nil {
		t.Fatal(err)
	}
	if got := firstDoc.Metadata["duplicate_of"]; got != "" {
		t.Errorf("first upload marked as duplicate of %q", got)
	}

	second := NewContext(strings.NewReader("same bytes"), "b.txt", nil, "alice")
	secondOutcome := orch.Run(context.Background(), second)
	if !secondOutcome.Success {
		t.Fatalf("second upload failed: %v", secondOutcome.Errors)
	}
	secondDoc, err := docs.GetByID(context.Background(), secondOutcome.DocumentID)
	if err != nil {
		t.Fatal(err)
	}
	if got := secondDoc.Metadata["duplicate_of"]; got != firstOutcome.DocumentID.String() {
		t.Errorf("duplicate_of = %q, want %q", got, firstOutcome.DocumentID)
	}
}

func TestInfectedUploadIsRejectedAndPurged(t *testing.T) {
	store := newMemStore()
	scanner := &fakeScanner{result: antivirus.ScanResult{Infected: true, Signature: "X"}}

	stages := []Stage{
		NewContentStorageStage(store, testLogger()),
		NewVirusScanStage(scanner, store, avConfig(true, true), testLogger()),
		NewPersistenceStage(newFakeDocs(), testLogger()),
	}
	orch := NewOrchestrator(stages, testLogger())

	pc := NewContext(strings.NewReader("malware payload"), "evil.txt", nil, "alice")
	outcome := orch.Run(context.Background(), pc)

	if outcome.Success {
		t.Error("infected upload reported success")
	}
	if msg := outcome.Errors["virus-scan"]; !strings.Contains(msg, "X") {
		t.Errorf("virus scan error does not mention the threat: %q", msg)
	}
	if _, err := store.Get(context.Background(), pc.ContentID); err == nil {
		t.Error("infected content still present in store")
	}
	if outcome.DocumentID != uuid.Nil {
		t.Error("document was persisted despite infection")
	}
}

func TestScannerUnavailableFailOpenVsClosed(t *testing.T) {
	tests := []struct {
		name        string
		failOpen    bool
		wantSuccess bool
	}{
		{name: "fail open lets the upload through", failOpen: true, wantSuccess: true},
		{name: "fail closed rejects the upload", failOpen: false, wantSuccess: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			scanner := &fakeScanner{err: fmt.Errorf("dial clamd: connection refused")}
			stages := []Stage{
				NewContentStorageStage(store, testLogger()),
				NewVirusScanStage(scanner, store, avConfig(true, tt.failOpen), testLogger()),
				NewPersistenceStage(newFakeDocs(), testLogger()),
			}
			pc := NewContext(strings.NewReader("content"), "doc.txt", nil, "alice")

			outcome := NewOrchestrator(stages, testLogger()).Run(context.Background(), pc)

			if outcome.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v (errors: %v)", outcome.Success, tt.wantSuccess, outcome.Errors)
			}
		})
	}
}

func TestScannerDisabledIsSkippedNotFatal(t *testing.T) {
	store := newMemStore()
	stages := []Stage{
		NewContentStorageStage(store, testLogger()),
		NewVirusScanStage(&fakeScanner{err: fmt.Errorf("should not be called")}, store, avConfig(false, false), testLogger()),
		NewPersistenceStage(newFakeDocs(), testLogger()),
	}
	pc := NewContext(strings.NewReader("content"), "doc.txt", nil, "alice")

	outcome := NewOrchestrator(stages, testLogger()).Run(context.Background(), pc)

	if !outcome.Success {
		t.Fatalf("disabled scanner failed the run: %v", outcome.Errors)
	}
	for _, exec := range outcome.Executions {
		if exec.Stage == "virus-scan" && exec.Result.Status != StatusSkipped {
			t.Errorf("virus scan status = %v, want skipped", exec.Result.Status)
		}
	}
}

func TestInitialVersionIsIdempotent(t *testing.T) {
	docs := newFakeDocs()
	versions := &fakeVersions{}
	created, err := docs.Create(context.Background(), &entity.Document{Name: "doc.txt", Versioned: true})
	if err != nil {
		t.Fatal(err)
	}

	stage := NewInitialVersionStage(docs, versions, testLogger())
	pc := &Context{DocumentID: created.ID, ContentID: "content-1", MimeType: "text/plain", User: "alice"}

	first := stage.Process(context.Background(), pc)
	if first.Status != StatusSuccess {
		t.Fatalf("first run status = %v, message %q", first.Status, first.Message)
	}
	second := stage.Process(context.Background(), pc)
	if second.Status != StatusSkipped {
		t.Errorf("second run status = %v, want skipped", second.Status)
	}
	if len(versions.versions) != 1 {
		t.Errorf("got %d version rows, want 1", len(versions.versions))
	}
	if versions.versions[0].VersionLabel != "1.0" {
		t.Errorf("version label = %q, want 1.0", versions.versions[0].VersionLabel)
	}
}

func TestClassificationThresholds(t *testing.T) {
	longText := strings.Repeat("invoice text ", 10)
	cfg := common.MLConfig{AutoClassify: true, SuggestThreshold: 0.7, AutoApplyThreshold: 0.85}

	tests := []struct {
		name          string
		confidence    float64
		wantApplied   bool
		wantSuggested bool
	}{
		{name: "below suggest threshold is ignored", confidence: 0.5},
		{name: "mid confidence only suggests", confidence: 0.75, wantSuggested: true},
		{name: "high confidence is applied", confidence: 0.9, wantApplied: true, wantSuggested: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := newFakeDocs()
			created, _ := docs.Create(context.Background(), &entity.Document{Name: "doc.txt"})
			categories := &fakeCategories{}
			ml := &fakeClassifier{available: true, prediction: &classifier.Prediction{Category: "Invoices", Confidence: tt.confidence}}

			stage := NewClassificationStage(docs, categories, ml, cfg, testLogger())
			pc := &Context{DocumentID: created.ID, Text: longText}

			result := stage.Process(context.Background(), pc)
			if result.Status != StatusSuccess {
				t.Fatalf("status = %v", result.Status)
			}

			if tt.wantSuggested && pc.SuggestedCategory != "Invoices" {
				t.Errorf("suggested category = %q, want Invoices", pc.SuggestedCategory)
			}
			if !tt.wantSuggested && pc.SuggestedCategory != "" {
				t.Errorf("unexpected suggestion %q", pc.SuggestedCategory)
			}

			doc, _ := docs.GetByID(context.Background(), created.ID)
			if tt.wantApplied != doc.HasCategory("Invoices") {
				t.Errorf("applied = %v, want %v", doc.HasCategory("Invoices"), tt.wantApplied)
			}
		})
	}
}

func TestClassificationSkipsShortTextAndDownService(t *testing.T) {
	cfg := common.MLConfig{AutoClassify: true, SuggestThreshold: 0.7, AutoApplyThreshold: 0.85}
	docs := newFakeDocs()
	created, _ := docs.Create(context.Background(), &entity.Document{Name: "doc.txt"})

	stage := NewClassificationStage(docs, &fakeCategories{}, &fakeClassifier{available: true}, cfg, testLogger())
	if stage.Supports(&Context{DocumentID: created.ID, Text: "too short"}) {
		t.Error("short text should not be classified")
	}

	down := NewClassificationStage(docs, &fakeCategories{}, &fakeClassifier{available: false}, cfg, testLogger())
	result := down.Process(context.Background(), &Context{DocumentID: created.ID, Text: strings.Repeat("x", 100)})
	if result.Status != StatusSkipped {
		t.Errorf("status with classifier down = %v, want skipped", result.Status)
	}
}
