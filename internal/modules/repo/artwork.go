package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/atelierworks/atelier/internal/modules/model"
)

const (
	imagesDir    = "images"
	dataDir      = "data"
	manifestFile = "manifest.json"
	csvFile      = "bulk_import.csv"
)

// csvColumns is the fixed column order of the bulk import rendering.
var csvColumns = []string{"ID", "Title", "Description", "Tags", "Price", "Dimensions", "Medium", "Status", "ImageFileName"}

type ArtworkRepo interface {
	// Save writes the image and the per-record JSON file, then upserts the
	// record into the manifest and regenerates the CSV. Returns the stored
	// record with its derived fields filled in.
	Save(ctx context.Context, rec *model.ArtworkRecord, image []byte, ext string) (*model.ArtworkRecord, error)
	// List returns all records in manifest order.
	List(ctx context.Context) ([]model.ArtworkRecord, error)
	// Get returns the per-record JSON file contents for one id.
	Get(ctx context.Context, id string) (*model.ArtworkRecord, error)
}

type artworkRepo struct {
	baseDir string
	log     *zap.Logger

	// Guards the manifest read-modify-write. Never held across a network call.
	mu sync.Mutex
}

// NewArtworkRepo creates the storage layout under baseDir.
func NewArtworkRepo(baseDir string, log *zap.Logger) (ArtworkRepo, error) {
	for _, d := range []string{baseDir, filepath.Join(baseDir, imagesDir), filepath.Join(baseDir, dataDir)} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", d, err)
		}
	}
	return &artworkRepo{baseDir: baseDir, log: log}, nil
}

func (r *artworkRepo) Save(_ context.Context, rec *model.ArtworkRecord, image []byte, ext string) (*model.ArtworkRecord, error) {
	rec.FileName = fmt.Sprintf("%s_%s.%s", rec.ID, sanitizeTitle(rec.Title), ext)
	rec.ImagePath = filepath.Join(imagesDir, rec.FileName)

	if err := os.WriteFile(filepath.Join(r.baseDir, rec.ImagePath), image, 0o644); err != nil {
		return nil, fmt.Errorf("write image: %w", err)
	}

	recJSON, err := sonic.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.baseDir, dataDir, rec.ID+".json"), recJSON, 0o644); err != nil {
		return nil, fmt.Errorf("write record json: %w", err)
	}

	if err := r.upsertManifest(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *artworkRepo) List(_ context.Context) ([]model.ArtworkRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readManifest(), nil
}

func (r *artworkRepo) Get(_ context.Context, id string) (*model.ArtworkRecord, error) {
	raw, err := os.ReadFile(filepath.Join(r.baseDir, dataDir, id+".json"))
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", id, err)
	}
	var rec model.ArtworkRecord
	if err := sonic.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", id, err)
	}
	return &rec, nil
}

// upsertManifest replaces the entry with the same id in place, or appends,
// then rewrites manifest.json and the CSV rendering whole.
func (r *artworkRepo) upsertManifest(rec *model.ArtworkRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	manifest := r.readManifest()

	replaced := false
	for i := range manifest {
		if manifest[i].ID == rec.ID {
			manifest[i] = *rec
			replaced = true
			break
		}
	}
	if !replaced {
		manifest = append(manifest, *rec)
	}

	out, err := sonic.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.baseDir, manifestFile), out, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if err := os.WriteFile(filepath.Join(r.baseDir, csvFile), []byte(renderCSV(manifest)), 0o644); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// readManifest treats a missing or unparseable manifest as empty. A damaged
// manifest is repaired by the next write, at the cost of the entries it
// could not parse; the warning makes that loss observable.
func (r *artworkRepo) readManifest() []model.ArtworkRecord {
	path := filepath.Join(r.baseDir, manifestFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("manifest unreadable, treating as empty", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	var manifest []model.ArtworkRecord
	if err := sonic.Unmarshal(raw, &manifest); err != nil {
		r.log.Warn("manifest unparseable, treating as empty", zap.String("path", path), zap.Error(err))
		return nil
	}
	return manifest
}

// renderCSV regenerates the bulk import file: one header row, one row per
// record, every field quote-wrapped with embedded quotes doubled so titles
// containing commas, quotes or newlines cannot break column alignment or be
// read as formulas by a spreadsheet.
func renderCSV(manifest []model.ArtworkRecord) string {
	var b strings.Builder

	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteString("\r\n")
	}

	writeRow(csvColumns)
	for _, rec := range manifest {
		writeRow([]string{
			rec.ID,
			rec.Title,
			rec.Description,
			strings.Join(rec.Tags, " "),
			rec.Price,
			rec.Dimensions,
			rec.Medium,
			rec.Status,
			rec.ImageFileName(),
		})
	}
	return b.String()
}

// sanitizeTitle reduces a title to a filesystem-safe slug for the image name.
func sanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s == "" {
		s = "untitled"
	}
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}
