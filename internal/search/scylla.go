package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"github.com/docshelf/docshelf/internal/common"
	"github.com/docshelf/docshelf/internal/entity"
)

type scyllaIndexer struct {
	session  *gocql.Session
	keyspace string
	logger   *slog.Logger
}

// NewScyllaIndexer connects to the cluster and ensures the keyspace and
// documents table exist.
func NewScyllaIndexer(cfg common.SearchConfig, logger *slog.Logger) (Indexer, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Consistency = gocql.Quorum

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, common.WrapError(err, "connect to search cluster")
	}

	idx := &scyllaIndexer{session: session, keyspace: cfg.Keyspace, logger: logger}
	if err := idx.createTables(); err != nil {
		session.Close()
		return nil, common.WrapError(err, "create search tables")
	}
	return idx, nil
}

func (s *scyllaIndexer) createTables() error {
	keyspaceQuery := fmt.Sprintf(`
		CREATE KEYSPACE IF NOT EXISTS %s
		WITH REPLICATION = {
			'class': 'SimpleStrategy',
			'replication_factor': 1
		}
	`, s.keyspace)
	if err := s.session.Query(keyspaceQuery).Exec(); err != nil {
		return err
	}

	documentsQuery := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.documents (
			doc_id uuid PRIMARY KEY,
			name text,
			mime_type text,
			file_size bigint,
			text_content text,
			tags list<text>,
			categories list<text>,
			correspondent text,
			preview_status text,
			created_by text
		)
	`, s.keyspace)
	return s.session.Query(documentsQuery).Exec()
}

func (s *scyllaIndexer) Index(ctx context.Context, doc *entity.Document) error {
	p := Projection(doc)
	query := fmt.Sprintf(`
		INSERT INTO %s.documents
			(doc_id, name, mime_type, file_size, text_content, tags, categories, correspondent, preview_status, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.keyspace)

	err := s.session.Query(query,
		p.ID, p.Name, p.MimeType, p.FileSize, p.Text,
		p.Tags, p.Categories, p.Correspondent, p.PreviewStatus, p.CreatedBy,
	).WithContext(ctx).Exec()
	if err != nil {
		return common.WrapError(err, "index document")
	}
	s.logger.Debug("search.document.indexed", "document_id", p.ID)
	return nil
}

func (s *scyllaIndexer) Remove(ctx context.Context, documentID uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s.documents WHERE doc_id = ?`, s.keyspace)
	if err := s.session.Query(query, documentID).WithContext(ctx).Exec(); err != nil {
		return common.WrapError(err, "remove document from index")
	}
	return nil
}

func (s *scyllaIndexer) Close() {
	s.session.Close()
}
