package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Chunk is one piece of regulation text with its metadata.
type Chunk struct {
	Content  string
	Metadata map[string]any
}

// Match is a retrieved chunk with its similarity score.
type Match struct {
	Content    string
	Metadata   map[string]any
	Similarity float64
}

// VectorStore persists embedded chunks and serves similarity queries.
type VectorStore interface {
	// Add stores chunks with their embeddings, one per chunk.
	Add(ctx context.Context, chunks []Chunk, embeddings [][]float32) error

	// Search returns the k most similar chunks to the query embedding.
	Search(ctx context.Context, embedding []float32, k int) ([]Match, error)
}

// PGStore is a VectorStore on a Postgres database with pgvector, laid
// out the way Supabase vector stores are: a regulation_embd table and
// a match_documents similarity function.
type PGStore struct {
	pool *pgxpool.Pool
}

// OpenPGStore connects to the database at dsn. An empty dsn falls
// back to SUPABASE_DB_URL.
func OpenPGStore(ctx context.Context, dsn string) (*PGStore, error) {
	if dsn == "" {
		dsn = os.Getenv("SUPABASE_DB_URL")
	}
	if dsn == "" {
		return nil, fmt.Errorf("SUPABASE_DB_URL is required for the regulation corpus")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &PGStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PGStore) Close() {
	s.pool.Close()
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`CREATE TABLE IF NOT EXISTS regulation_embd (
            id BIGSERIAL PRIMARY KEY,
            content TEXT NOT NULL,
            metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
            embedding VECTOR(1536)
        )`,
		`CREATE OR REPLACE FUNCTION match_documents(
            query_embedding VECTOR(1536),
            match_count INT
        ) RETURNS TABLE (content TEXT, metadata JSONB, similarity FLOAT)
        LANGUAGE sql STABLE AS $$
            SELECT content, metadata, 1 - (embedding <=> query_embedding)
            FROM regulation_embd
            ORDER BY embedding <=> query_embedding
            LIMIT match_count
        $$`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *PGStore) Add(ctx context.Context, chunks []Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("got %d chunks but %d embeddings", len(chunks), len(embeddings))
	}

	for i, chunk := range chunks {
		meta, err := json.Marshal(chunk.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		_, err = s.pool.Exec(ctx, `
			INSERT INTO regulation_embd (content, metadata, embedding)
			VALUES ($1, $2, $3::vector)`,
			chunk.Content, meta, vectorLiteral(embeddings[i]))
		if err != nil {
			return fmt.Errorf("insert chunk %d: %w", i, err)
		}
	}
	return nil
}

func (s *PGStore) Search(ctx context.Context, embedding []float32, k int) ([]Match, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT content, metadata, similarity
		 FROM match_documents($1::vector, $2)`,
		vectorLiteral(embedding), k)
	if err != nil {
		return nil, fmt.Errorf("match documents: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var meta []byte
		if err := rows.Scan(&m.Content, &meta, &m.Similarity); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &m.Metadata); err != nil {
				return nil, fmt.Errorf("decode metadata: %w", err)
			}
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// vectorLiteral renders an embedding in pgvector's input syntax.
func vectorLiteral(v []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(x), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
